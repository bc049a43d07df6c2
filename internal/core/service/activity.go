package service

import (
	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeActivityStats builds day/week/month histograms plus a histogram
// keyed by the raw event type string, so unrecognised types stay visible.
func ComputeActivityStats(events []entities.Event) entities.ActivityStats {
	stats := entities.ActivityStats{
		Daily:   make(map[string]int),
		Weekly:  make(map[string]int),
		Monthly: make(map[string]int),
		ByType:  make(map[string]int),
	}

	for _, event := range events {
		keys := Buckets(event.CreatedAt)
		stats.Daily[keys.Day]++
		stats.Weekly[keys.Week]++
		stats.Monthly[keys.Month]++
		stats.ByType[event.Type]++
	}

	return stats
}
