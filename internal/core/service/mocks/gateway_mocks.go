package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
	"github.com/devfolio/stats-service/internal/core/service"
)

// GitHubGateway mock
type GitHubGateway struct {
	mock.Mock
}

func (m *GitHubGateway) Account(ctx context.Context, username string) (*entities.Account, error) {
	args := m.Called(ctx, username)
	if account, ok := args.Get(0).(*entities.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GitHubGateway) Events(ctx context.Context, username string, perPage int) ([]entities.Event, error) {
	args := m.Called(ctx, username, perPage)
	if events, ok := args.Get(0).([]entities.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GitHubGateway) Repositories(ctx context.Context, username string, perPage int) ([]entities.Repository, error) {
	args := m.Called(ctx, username, perPage)
	if repos, ok := args.Get(0).([]entities.Repository); ok {
		return repos, args.Error(1)
	}
	return nil, args.Error(1)
}

// SnapshotStore mock
type SnapshotStore struct {
	mock.Mock
}

func (m *SnapshotStore) Get(ctx context.Context, username string) (*service.CachedProfile, error) {
	args := m.Called(ctx, username)
	if cached, ok := args.Get(0).(*service.CachedProfile); ok {
		return cached, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SnapshotStore) Save(ctx context.Context, username string, profile *entities.Profile, fetchedAt time.Time) error {
	args := m.Called(ctx, username, profile, fetchedAt)
	return args.Error(0)
}

func (m *SnapshotStore) Usernames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if usernames, ok := args.Get(0).([]string); ok {
		return usernames, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProfileProvider mock
type ProfileProvider struct {
	mock.Mock
}

func (m *ProfileProvider) GetProfile(ctx context.Context, username string) (*entities.Profile, error) {
	args := m.Called(ctx, username)
	if profile, ok := args.Get(0).(*entities.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}
