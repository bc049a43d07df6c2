package api

import (
	"encoding/json"
	"time"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// Raw wire shapes. Nullable fields use pointers or RawMessage so absence
// normalizes to a default instead of an error.

type rawUser struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Hireable    bool      `json:"hireable"`
	CreatedAt   time.Time `json:"created_at"`
}

type rawRepository struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
	Language        *string  `json:"language"`
	Size            int      `json:"size"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	WatchersCount   int      `json:"watchers_count"`
	Topics          []string `json:"topics"`
	License         *struct {
		SpdxID string `json:"spdx_id"`
	} `json:"license"`
	Fork      bool      `json:"fork"`
	Archived  bool      `json:"archived"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PushedAt  time.Time `json:"pushed_at"`
}

type rawEvent struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Actor struct {
		Login string `json:"login"`
	} `json:"actor"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type rawPushPayload struct {
	Size    int               `json:"size"`
	Commits []json.RawMessage `json:"commits"`
}

func normalizeAccount(raw rawUser) *entities.Account {
	return &entities.Account{
		Login:       raw.Login,
		Name:        raw.Name,
		Followers:   raw.Followers,
		Following:   raw.Following,
		PublicRepos: raw.PublicRepos,
		PublicGists: raw.PublicGists,
		Hireable:    raw.Hireable,
		CreatedAt:   raw.CreatedAt,
	}
}

func normalizeRepositories(raw []rawRepository) []entities.Repository {
	repos := make([]entities.Repository, 0, len(raw))
	for _, r := range raw {
		repo := entities.Repository{
			ID:            r.ID,
			OwnerName:     r.Owner.Login,
			Name:          r.Name,
			Size:          r.Size,
			StarsCount:    r.StargazersCount,
			ForksCount:    r.ForksCount,
			WatchersCount: r.WatchersCount,
			Topics:        r.Topics,
			Fork:          r.Fork,
			Archived:      r.Archived,
			Disabled:      r.Disabled,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
			PushedAt:      r.PushedAt,
		}
		if r.Language != nil {
			repo.Language = *r.Language
		}
		if r.License != nil {
			repo.License = r.License.SpdxID
		}
		if repo.Topics == nil {
			repo.Topics = []string{}
		}
		repos = append(repos, repo)
	}
	return repos
}

// normalizeEvents keeps unrecognised event types verbatim so "by type"
// histograms stay complete.
func normalizeEvents(raw []rawEvent) []entities.Event {
	events := make([]entities.Event, 0, len(raw))
	for _, r := range raw {
		event := entities.Event{
			ID:         r.ID,
			Type:       r.Type,
			ActorLogin: r.Actor.Login,
			RepoName:   r.Repo.Name,
			CreatedAt:  r.CreatedAt,
		}
		if r.Type == entities.EventTypePush {
			event.CommitCount = pushCommitCount(r.Payload)
		}
		events = append(events, event)
	}
	return events
}

// pushCommitCount reads the commit count off a push payload, preferring the
// size field and falling back to the commit list length. Absent or malformed
// payloads count as zero.
func pushCommitCount(payload json.RawMessage) int {
	if len(payload) == 0 {
		return 0
	}
	var p rawPushPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0
	}
	if p.Size > 0 {
		return p.Size
	}
	return len(p.Commits)
}
