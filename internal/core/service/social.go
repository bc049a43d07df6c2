package service

import (
	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeSocialStats copies the social counters off the Account so consumers
// get them bundled with the derived metrics.
func ComputeSocialStats(account *entities.Account) entities.SocialStats {
	if account == nil {
		return entities.SocialStats{}
	}
	return entities.SocialStats{
		Followers:   account.Followers,
		Following:   account.Following,
		PublicRepos: account.PublicRepos,
		PublicGists: account.PublicGists,
		Hireable:    account.Hireable,
	}
}
