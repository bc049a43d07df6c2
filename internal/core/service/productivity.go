package service

import (
	"time"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeProductivityStats derives two plain rate ratios. Denominators are
// clamped to one day / one month, and empty inputs yield zero rates rather
// than NaN.
func ComputeProductivityStats(events []entities.Event, repos []entities.Repository, now time.Time) entities.ProductivityStats {
	var stats entities.ProductivityStats

	if len(events) > 0 {
		oldest := events[0].CreatedAt
		commits := 0
		for _, event := range events {
			if event.CreatedAt.Before(oldest) {
				oldest = event.CreatedAt
			}
			if event.Type == entities.EventTypePush {
				commits += event.CommitCount
			}
		}
		days := now.Sub(oldest).Hours() / 24
		if days < 1 {
			days = 1
		}
		stats.CommitsPerDay = float64(commits) / days
	}

	if len(repos) > 0 {
		oldest := repos[0].CreatedAt
		for _, repo := range repos {
			if repo.CreatedAt.Before(oldest) {
				oldest = repo.CreatedAt
			}
		}
		months := now.Sub(oldest).Hours() / 24 / 30
		if months < 1 {
			months = 1
		}
		stats.ReposPerMonth = float64(len(repos)) / months
	}

	return stats
}
