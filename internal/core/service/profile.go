package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// DefaultPageSize is the per_page value used for the event and repository
// listings.
const DefaultPageSize = 100

// GitHubGateway abstracts the GitHub API adapter so the service can be
// tested against mocks.
type GitHubGateway interface {
	Account(ctx context.Context, username string) (*entities.Account, error)
	Events(ctx context.Context, username string, perPage int) ([]entities.Event, error)
	Repositories(ctx context.Context, username string, perPage int) ([]entities.Repository, error)
}

// ProfileService aggregates one account's GitHub activity into a Profile.
// It is the only component that performs I/O; every calculator it invokes
// is a pure function.
type ProfileService struct {
	gateway GitHubGateway
	now     func() time.Time
}

func NewProfileService(gateway GitHubGateway) *ProfileService {
	return &ProfileService{
		gateway: gateway,
		now:     time.Now,
	}
}

// GetProfile fetches account, events and repositories concurrently, then
// computes the statistics snapshot. If any fetch fails the whole call fails;
// no partial snapshot is synthesized from incomplete data.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*entities.Profile, error) {
	var (
		account *entities.Account
		events  []entities.Event
		repos   []entities.Repository
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = s.gateway.Account(ctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.gateway.Events(ctx, username, DefaultPageSize)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.gateway.Repositories(ctx, username, DefaultPageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entities.Profile{
		Account:      account,
		Repositories: repos,
		Events:       events,
		Stats:        ComputeSnapshot(account, events, repos, s.now()),
	}, nil
}

// ComputeSnapshot runs every metric calculator over the normalized inputs.
// Pure: the same inputs always produce an identical snapshot.
func ComputeSnapshot(account *entities.Account, events []entities.Event, repos []entities.Repository, now time.Time) entities.StatisticsSnapshot {
	return entities.StatisticsSnapshot{
		Languages:     ComputeLanguageStats(repos),
		Activity:      ComputeActivityStats(events),
		Contributions: ComputeContributionStats(events),
		Streaks:       ComputeStreakStats(events, now),
		Productivity:  ComputeProductivityStats(events, repos, now),
		Social:        ComputeSocialStats(account),
		Impact:        ComputeImpactStats(repos),
	}
}
