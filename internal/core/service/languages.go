package service

import (
	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeLanguageStats accumulates repo count, total size and total stars per
// language. Repositories without a reported language are skipped; language
// names are used verbatim.
func ComputeLanguageStats(repos []entities.Repository) map[string]entities.LanguageStat {
	stats := make(map[string]entities.LanguageStat)
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		s := stats[repo.Language]
		s.Repos++
		s.Size += repo.Size
		s.Stars += repo.StarsCount
		stats[repo.Language] = s
	}
	return stats
}
