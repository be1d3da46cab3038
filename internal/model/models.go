// internal/model/models.go
package model

import "math"

// Profile is the public snapshot of a GitHub user.
// Timestamps are kept as ISO-8601 text as returned by the API.
type Profile struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// RepositorySummary holds the metadata of a single public repository.
type RepositorySummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	IsFork      bool   `json:"is_fork"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	SizeKB      int    `json:"size"`
}

// ProfileBundle is a profile plus its repositories, most recently updated first.
type ProfileBundle struct {
	Profile      Profile
	Repositories []RepositorySummary
}

// LanguageCount is one entry of the top-languages ranking.
type LanguageCount struct {
	Language string `json:"language"`
	Repos    int    `json:"repos"`
}

// AnalysisReport contains the statistics derived from a ProfileBundle.
type AnalysisReport struct {
	TotalRepos      int                `json:"total_repos"`
	OriginalRepos   int                `json:"original_repos"`
	ForkedRepos     int                `json:"forked_repos"`
	ForkPercentage  float64            `json:"fork_percentage"`
	TopLanguages    []LanguageCount    `json:"top_languages"`
	RecentActivity  int                `json:"recent_activity"`
	RecentCutoff    string             `json:"recent_cutoff"`
	GenericNames    int                `json:"generic_names"`
	MinimalRepos    int                `json:"minimal_repos"`
	AverageStars    float64            `json:"average_stars"`
	MostStarred     *RepositorySummary `json:"most_starred"`
	AccountAgeYears int                `json:"account_age_years"`
}

// Accepted temperature range for roast generation.
const (
	MinTemperature = 0.1
	MaxTemperature = 1.0
)

// ValidTemperature reports whether t is a finite value within the accepted range.
func ValidTemperature(t float64) bool {
	return !math.IsNaN(t) && t >= MinTemperature && t <= MaxTemperature
}
