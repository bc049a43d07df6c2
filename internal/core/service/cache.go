package service

import (
	"context"
	"log"
	"time"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// CachedProfile is a stored profile plus the instant it was aggregated.
type CachedProfile struct {
	Profile   *entities.Profile
	FetchedAt time.Time
}

// SnapshotStore persists aggregated profiles as JSON, keyed by username.
type SnapshotStore interface {
	Get(ctx context.Context, username string) (*CachedProfile, error)
	Save(ctx context.Context, username string, profile *entities.Profile, fetchedAt time.Time) error
	Usernames(ctx context.Context) ([]string, error)
}

// ProfileProvider is the read side shared by the plain and cached services.
type ProfileProvider interface {
	GetProfile(ctx context.Context, username string) (*entities.Profile, error)
}

// CachedProfileService is a read-through cache around a ProfileProvider.
// A stored profile younger than the TTL is served as-is; anything else
// triggers a fresh aggregation. Save failures are logged and ignored so a
// flaky store never blocks a successful aggregation.
type CachedProfileService struct {
	inner ProfileProvider
	store SnapshotStore
	ttl   time.Duration
	now   func() time.Time
}

func NewCachedProfileService(inner ProfileProvider, store SnapshotStore, ttl time.Duration) *CachedProfileService {
	return &CachedProfileService{
		inner: inner,
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *CachedProfileService) GetProfile(ctx context.Context, username string) (*entities.Profile, error) {
	cached, err := s.store.Get(ctx, username)
	if err != nil {
		log.Printf("snapshot cache read failed for %q: %v", username, err)
	} else if cached != nil && s.now().Sub(cached.FetchedAt) < s.ttl {
		return cached.Profile, nil
	}

	return s.Refresh(ctx, username)
}

// Refresh bypasses the TTL check, re-aggregates and stores the result.
func (s *CachedProfileService) Refresh(ctx context.Context, username string) (*entities.Profile, error) {
	profile, err := s.inner.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, username, profile, s.now()); err != nil {
		log.Printf("snapshot cache write failed for %q: %v", username, err)
	}

	return profile, nil
}

// Usernames lists every account with a cached profile.
func (s *CachedProfileService) Usernames(ctx context.Context) ([]string, error) {
	return s.store.Usernames(ctx)
}
