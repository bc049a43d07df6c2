package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

func pushOn(day time.Time) entities.Event {
	return entities.Event{Type: entities.EventTypePush, CommitCount: 1, CreatedAt: day}
}

func TestComputeStreakStatsLongestRun(t *testing.T) {
	events := []entities.Event{
		pushOn(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)),
		pushOn(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)),
		pushOn(time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)),
	}
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeStreakStats(events, now)

	assert.Equal(t, 2, stats.Longest, "Jan 1-2 run")
	assert.Equal(t, 0, stats.Current, "nothing pushed today or yesterday")
}

func TestComputeStreakStatsCurrentChainsToYesterday(t *testing.T) {
	events := []entities.Event{
		pushOn(time.Date(2024, 1, 3, 22, 0, 0, 0, time.UTC)),
		pushOn(time.Date(2024, 1, 4, 6, 0, 0, 0, time.UTC)),
	}

	// Pushed today: streak of two days.
	stats := ComputeStreakStats(events, time.Date(2024, 1, 4, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, stats.Current)

	// Last push was yesterday: the streak still counts.
	stats = ComputeStreakStats(events, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, stats.Current)

	// Two days of silence break it.
	stats = ComputeStreakStats(events, time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, stats.Current)
}

func TestComputeStreakStatsDuplicateDaysCountOnce(t *testing.T) {
	events := []entities.Event{
		pushOn(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		pushOn(time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)),
		pushOn(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
	}
	now := time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)

	stats := ComputeStreakStats(events, now)

	assert.Equal(t, 2, stats.Longest)
	assert.Equal(t, 2, stats.Current)
}

func TestComputeStreakStatsIgnoresNonPushEvents(t *testing.T) {
	events := []entities.Event{
		{Type: entities.EventTypeWatch, CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{Type: entities.EventTypeIssues, CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)},
	}

	stats := ComputeStreakStats(events, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, entities.StreakStats{}, stats)
}

func TestComputeStreakStatsLongestNeverBelowCurrent(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 11, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 12, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC),
	}
	var events []entities.Event
	for _, d := range days {
		events = append(events, pushOn(d))
	}

	for _, now := range []time.Time{
		time.Date(2024, 2, 12, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 20, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC),
	} {
		stats := ComputeStreakStats(events, now)
		assert.GreaterOrEqual(t, stats.Longest, stats.Current)
	}
}

func TestComputeStreakStatsEmpty(t *testing.T) {
	stats := ComputeStreakStats(nil, time.Now())
	assert.Equal(t, entities.StreakStats{}, stats)
}
