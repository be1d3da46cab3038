package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github-roaster/internal/model"
)

func TestCompose(t *testing.T) {
	bundle := &model.ProfileBundle{
		Profile: model.Profile{
			Username: "octocat",
			Bio:      "Senior \"10x\" engineer",
			Company:  "@github",
		},
		Repositories: []model.RepositorySummary{
			{Name: "one"}, {Name: "two"}, {Name: "three"}, {Name: "four"}, {Name: "five"}, {Name: "six"},
		},
	}
	report := model.AnalysisReport{
		TotalRepos:      6,
		OriginalRepos:   4,
		ForkPercentage:  33.3333,
		TopLanguages:    []model.LanguageCount{{Language: "Go", Repos: 3}, {Language: "Shell", Repos: 1}},
		RecentActivity:  2,
		RecentCutoff:    "2024-01-01",
		GenericNames:    1,
		MinimalRepos:    2,
		AverageStars:    2.26,
		MostStarred:     &model.RepositorySummary{Name: "two", Stars: 9},
		AccountAgeYears: 15,
	}

	got := Compose(bundle, report)

	assert.Contains(t, got, "- Username: octocat\n")
	assert.Contains(t, got, "- Bio: \"Senior \"10x\" engineer\"\n")
	assert.Contains(t, got, "- Account age: 15 years\n")
	assert.Contains(t, got, "- Original vs Forks: 4 original, 33.3% forks\n")
	assert.Contains(t, got, "- Top languages: Go (3 repos), Shell (1 repos)\n")
	assert.Contains(t, got, "- Average stars per repo: 2.3\n")
	assert.Contains(t, got, "- Most starred repo: two (9 stars)\n")
	assert.Contains(t, got, "- Recent activity (since 2024-01-01): 2 repositories updated\n")
	assert.Contains(t, got, "Sample repository names: one, two, three, four, five\n")
	assert.NotContains(t, got, "six")
}

func TestCompose_NoRepositories(t *testing.T) {
	bundle := &model.ProfileBundle{Profile: model.Profile{Username: "octocat"}}

	got := Compose(bundle, model.AnalysisReport{RecentCutoff: "2024-01-01"})

	assert.Contains(t, got, "- Most starred repo: None (0 stars)\n")
	assert.Contains(t, got, "- Top languages: \n")
	assert.Contains(t, got, "Sample repository names: \n")
}

func TestUserMessage(t *testing.T) {
	bundle := &model.ProfileBundle{Profile: model.Profile{Username: "octocat"}}

	got := UserMessage(bundle, model.AnalysisReport{})

	assert.True(t, strings.HasPrefix(got, "Please roast this GitHub profile:\n\nProfile Analysis:\n"))
	assert.Contains(t, got, "octocat")
	assert.NotContains(t, SystemPrompt, "octocat")
}
