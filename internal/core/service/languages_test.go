package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

func TestComputeLanguageStatsSkipsMissingLanguage(t *testing.T) {
	repos := []entities.Repository{
		{Name: "web", Language: "TypeScript", StarsCount: 10, Size: 420},
		{Name: "dotfiles", Language: "", StarsCount: 5, Size: 12},
	}

	stats := ComputeLanguageStats(repos)

	assert.Len(t, stats, 1)
	assert.Equal(t, entities.LanguageStat{Repos: 1, Size: 420, Stars: 10}, stats["TypeScript"])
}

func TestComputeLanguageStatsAccumulates(t *testing.T) {
	repos := []entities.Repository{
		{Language: "Go", StarsCount: 3, Size: 100},
		{Language: "Go", StarsCount: 7, Size: 50},
		{Language: "go", StarsCount: 1, Size: 1}, // names are not case-folded
	}

	stats := ComputeLanguageStats(repos)

	assert.Equal(t, entities.LanguageStat{Repos: 2, Size: 150, Stars: 10}, stats["Go"])
	assert.Equal(t, entities.LanguageStat{Repos: 1, Size: 1, Stars: 1}, stats["go"])
}

func TestComputeLanguageStatsEmpty(t *testing.T) {
	stats := ComputeLanguageStats(nil)
	assert.Empty(t, stats)
}
