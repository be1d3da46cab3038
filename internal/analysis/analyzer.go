// Package analysis derives descriptive statistics from a fetched profile.
package analysis

import (
	"sort"
	"strings"
	"time"

	"github-roaster/internal/model"
)

const (
	DefaultRecentCutoff  = "2024-01-01"
	DefaultMinimalSizeKB = 10
	topLanguagesLimit    = 5
	unknownLanguage      = "Unknown"
)

// DefaultGenericNames are placeholder terms that mark a repository name as generic.
var DefaultGenericNames = []string{"test", "hello-world", "my-project", "untitled", "new-project", "temp"}

// Options tunes the thresholds used by the Analyzer.
type Options struct {
	// RecentCutoff is compared as text against ISO-8601 update timestamps.
	RecentCutoff string
	// GenericNames are matched case-insensitively as substrings of repository names.
	GenericNames []string
	// MinimalSizeKB is the exclusive upper bound for a repository to count as minimal.
	MinimalSizeKB int
	// Now is used to compute the account age.
	Now func() time.Time
}

// Analyzer computes an AnalysisReport from a ProfileBundle. It holds no mutable state.
type Analyzer struct {
	recentCutoff  string
	genericNames  []string
	minimalSizeKB int
	now           func() time.Time
}

// NewAnalyzer creates an Analyzer, filling zero-valued options with the defaults.
func NewAnalyzer(opts Options) *Analyzer {
	a := &Analyzer{
		recentCutoff:  opts.RecentCutoff,
		minimalSizeKB: opts.MinimalSizeKB,
		now:           opts.Now,
	}
	if a.recentCutoff == "" {
		a.recentCutoff = DefaultRecentCutoff
	}
	if a.minimalSizeKB <= 0 {
		a.minimalSizeKB = DefaultMinimalSizeKB
	}
	if a.now == nil {
		a.now = time.Now
	}
	names := opts.GenericNames
	if names == nil {
		names = DefaultGenericNames
	}
	for _, n := range names {
		a.genericNames = append(a.genericNames, strings.ToLower(n))
	}
	return a
}

// Analyze never fails: an empty repository list yields zero counts and no most-starred repository.
func (a *Analyzer) Analyze(bundle *model.ProfileBundle) model.AnalysisReport {
	repos := bundle.Repositories
	report := model.AnalysisReport{
		TotalRepos:      len(repos),
		TopLanguages:    topLanguages(repos, topLanguagesLimit),
		RecentCutoff:    a.recentCutoff,
		AccountAgeYears: a.accountAge(bundle.Profile.CreatedAt),
	}

	totalStars := 0
	for i := range repos {
		repo := &repos[i]
		if repo.IsFork {
			report.ForkedRepos++
		}
		if repo.UpdatedAt > a.recentCutoff {
			report.RecentActivity++
		}
		if a.isGenericName(repo.Name) {
			report.GenericNames++
		}
		if repo.SizeKB < a.minimalSizeKB {
			report.MinimalRepos++
		}
		totalStars += repo.Stars
		if report.MostStarred == nil || repo.Stars > report.MostStarred.Stars {
			report.MostStarred = repo
		}
	}

	if report.MostStarred != nil {
		mostStarred := *report.MostStarred
		report.MostStarred = &mostStarred
	}

	denominator := float64(max(report.TotalRepos, 1))
	report.OriginalRepos = report.TotalRepos - report.ForkedRepos
	report.ForkPercentage = float64(report.ForkedRepos) / denominator * 100
	report.AverageStars = float64(totalStars) / denominator

	return report
}

func (a *Analyzer) isGenericName(name string) bool {
	lower := strings.ToLower(name)
	for _, generic := range a.genericNames {
		if strings.Contains(lower, generic) {
			return true
		}
	}
	return false
}

// accountAge is the difference between the current year and the creation year.
func (a *Analyzer) accountAge(createdAt string) int {
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return 0
	}
	return a.now().UTC().Year() - created.UTC().Year()
}

// topLanguages ranks known languages by repository count; ties keep first-seen order.
func topLanguages(repos []model.RepositorySummary, limit int) []model.LanguageCount {
	counts := make([]model.LanguageCount, 0)
	index := make(map[string]int)
	for _, repo := range repos {
		if repo.Language == "" || repo.Language == unknownLanguage {
			continue
		}
		if i, ok := index[repo.Language]; ok {
			counts[i].Repos++
			continue
		}
		index[repo.Language] = len(counts)
		counts = append(counts, model.LanguageCount{Language: repo.Language, Repos: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Repos > counts[j].Repos
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
