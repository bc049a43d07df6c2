package entities

// LanguageStat accumulates repository facts for one language name,
// keyed exactly as GitHub reports it (no case folding).
type LanguageStat struct {
	Repos int `json:"repos"`
	Size  int `json:"size"` // KB
	Stars int `json:"stars"`
}

// ActivityStats holds event histograms keyed by bucket key or raw event type.
type ActivityStats struct {
	Daily   map[string]int `json:"daily"`
	Weekly  map[string]int `json:"weekly"`
	Monthly map[string]int `json:"monthly"`
	ByType  map[string]int `json:"by_type"`
}

// ContributionStats counts contribution events by kind. Commits sums the
// push payload commit counts; the rest count one per event.
type ContributionStats struct {
	Commits      int `json:"commits"`
	PullRequests int `json:"pull_requests"`
	Issues       int `json:"issues"`
	Reviews      int `json:"reviews"`
	Releases     int `json:"releases"`
}

// StreakStats reports consecutive push-day runs. Longest >= Current always.
type StreakStats struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ProductivityStats holds simple rate ratios with clamped denominators.
type ProductivityStats struct {
	CommitsPerDay float64 `json:"commits_per_day"`
	ReposPerMonth float64 `json:"repos_per_month"`
}

// SocialStats are pass-through counts from the Account.
type SocialStats struct {
	Followers   int  `json:"followers"`
	Following   int  `json:"following"`
	PublicRepos int  `json:"public_repos"`
	PublicGists int  `json:"public_gists"`
	Hireable    bool `json:"hireable"`
}

// ImpactStats aggregates reach across the Repository set.
type ImpactStats struct {
	TotalStars          int         `json:"total_stars"`
	TotalForks          int         `json:"total_forks"`
	TotalWatchers       int         `json:"total_watchers"`
	MostStarredRepo     *Repository `json:"most_starred_repo"`
	MostForkedRepo      *Repository `json:"most_forked_repo"`
	AverageStarsPerRepo float64     `json:"average_stars_per_repo"`
}

// StatisticsSnapshot is the complete set of derived metrics for one Account.
// It is fully determined by the (Account, Event, Repository) inputs and is
// recomputed fresh on every aggregation.
type StatisticsSnapshot struct {
	Languages     map[string]LanguageStat `json:"language_stats"`
	Activity      ActivityStats           `json:"activity_stats"`
	Contributions ContributionStats       `json:"contribution_stats"`
	Streaks       StreakStats             `json:"streak_stats"`
	Productivity  ProductivityStats       `json:"productivity_stats"`
	Social        SocialStats             `json:"social_stats"`
	Impact        ImpactStats             `json:"impact_stats"`
}

// Profile bundles the snapshot with the normalized sequences it was derived
// from, since downstream consumers read both.
type Profile struct {
	Account      *Account           `json:"account"`
	Repositories []Repository       `json:"repositories"`
	Events       []Event            `json:"events"`
	Stats        StatisticsSnapshot `json:"stats"`
}
