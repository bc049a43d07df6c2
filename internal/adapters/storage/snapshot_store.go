package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
	"github.com/devfolio/stats-service/internal/core/service"
)

// SnapshotRecord is one cached profile aggregation, stored as JSON.
type SnapshotRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex"`
	Payload   []byte
	FetchedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GormSnapshotStore implements service.SnapshotStore on Postgres.
type GormSnapshotStore struct {
	db *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db: db}
}

// Get returns the cached profile for a username, or nil on a cache miss.
func (s *GormSnapshotStore) Get(ctx context.Context, username string) (*service.CachedProfile, error) {
	var record SnapshotRecord
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var profile entities.Profile
	if err := json.Unmarshal(record.Payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot payload: %w", err)
	}

	return &service.CachedProfile{Profile: &profile, FetchedAt: record.FetchedAt}, nil
}

// Save upserts the cached profile for a username.
func (s *GormSnapshotStore) Save(ctx context.Context, username string, profile *entities.Profile, fetchedAt time.Time) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	var record SnapshotRecord
	err = s.db.WithContext(ctx).Where("username = ?", username).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = SnapshotRecord{Username: username, Payload: payload, FetchedAt: fetchedAt}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	record.Payload = payload
	record.FetchedAt = fetchedAt
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("failed to update snapshot: %w", err)
	}
	return nil
}

// Usernames lists every account with a cached snapshot.
func (s *GormSnapshotStore) Usernames(ctx context.Context) ([]string, error) {
	var usernames []string
	err := s.db.WithContext(ctx).Model(&SnapshotRecord{}).Pluck("username", &usernames).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot usernames: %w", err)
	}
	return usernames, nil
}
