package entities

import (
	"time"
)

// Repository represents a GitHub repository owned by an Account
type Repository struct {
	ID            int64     `json:"id"`
	OwnerName     string    `json:"owner_name"`
	Name          string    `json:"name"`
	Language      string    `json:"language"` // empty when GitHub reports null
	Size          int       `json:"size"`     // KB
	StarsCount    int       `json:"stargazers_count"`
	ForksCount    int       `json:"forks_count"`
	WatchersCount int       `json:"watchers_count"`
	Topics        []string  `json:"topics"`
	License       string    `json:"license"` // empty when no license
	Fork          bool      `json:"fork"`
	Archived      bool      `json:"archived"`
	Disabled      bool      `json:"disabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PushedAt      time.Time `json:"pushed_at"`
}
