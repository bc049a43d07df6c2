package service

import (
	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeImpactStats sums stars, forks and watchers over the repository set
// and picks the single most-starred and most-forked repositories. Ties keep
// the first repository encountered. An empty set yields zero totals and a
// zero average.
func ComputeImpactStats(repos []entities.Repository) entities.ImpactStats {
	var stats entities.ImpactStats

	for i := range repos {
		repo := repos[i]
		stats.TotalStars += repo.StarsCount
		stats.TotalForks += repo.ForksCount
		stats.TotalWatchers += repo.WatchersCount

		if stats.MostStarredRepo == nil || repo.StarsCount > stats.MostStarredRepo.StarsCount {
			starred := repo
			stats.MostStarredRepo = &starred
		}
		if stats.MostForkedRepo == nil || repo.ForksCount > stats.MostForkedRepo.ForksCount {
			forked := repo
			stats.MostForkedRepo = &forked
		}
	}

	if len(repos) > 0 {
		stats.AverageStarsPerRepo = float64(stats.TotalStars) / float64(len(repos))
	}

	return stats
}
