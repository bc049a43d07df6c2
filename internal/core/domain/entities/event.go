package entities

import (
	"time"
)

// Known GitHub event types. Events carry their raw type string, so
// unrecognised types still flow through the "by type" histograms.
const (
	EventTypePush              = "PushEvent"
	EventTypePullRequest       = "PullRequestEvent"
	EventTypeIssues            = "IssuesEvent"
	EventTypePullRequestReview = "PullRequestReviewEvent"
	EventTypeRelease           = "ReleaseEvent"
	EventTypeWatch             = "WatchEvent"
	EventTypeFork              = "ForkEvent"
	EventTypeCreate            = "CreateEvent"
)

// Event is a single public activity record attributed to an Account.
// The repository it references need not appear in the Repository set.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ActorLogin  string    `json:"actor_login"`
	RepoName    string    `json:"repo_name"`
	CommitCount int       `json:"commit_count"` // push events only, 0 otherwise
	CreatedAt   time.Time `json:"created_at"`
}
