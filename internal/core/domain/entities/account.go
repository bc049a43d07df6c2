package entities

import (
	"time"
)

// Account is an immutable snapshot of a GitHub user profile
type Account struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Hireable    bool      `json:"hireable"`
	CreatedAt   time.Time `json:"created_at"`
}
