package service

import (
	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeContributionStats scans the events once. Push events contribute
// their payload commit count; PR, issue, review and release events count one
// each. Unknown event types contribute to none of the counters.
func ComputeContributionStats(events []entities.Event) entities.ContributionStats {
	var stats entities.ContributionStats

	for _, event := range events {
		switch event.Type {
		case entities.EventTypePush:
			stats.Commits += event.CommitCount
		case entities.EventTypePullRequest:
			stats.PullRequests++
		case entities.EventTypeIssues:
			stats.Issues++
		case entities.EventTypePullRequestReview:
			stats.Reviews++
		case entities.EventTypeRelease:
			stats.Releases++
		}
	}

	return stats
}
