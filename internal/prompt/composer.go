// Package prompt renders a fetched profile and its statistics into completion-service messages.
package prompt

import (
	"fmt"
	"strings"

	"github-roaster/internal/model"
)

const sampleRepoLimit = 5

// UserPrefix introduces the per-request data block in the user message.
const UserPrefix = "Please roast this GitHub profile:\n\n"

// SystemPrompt is the fixed persona sent with every request. It takes no per-request substitution.
const SystemPrompt = `You are a sharp-eyed GitHub profile analyst who exposes the gap between what developers say they are and what their repositories actually show. Compare the bio against the repository evidence and point out where the profile falls behind current industry practice.

WHAT TO LOOK FOR:

1. Bio versus reality
- Claimed roles ("Full-Stack", "Senior", "AI/ML", "DevOps") that the repositories do not back up.
- Years on the platform compared with the sophistication of the projects.

2. Repository quality
- Generic names such as test, my-project or hello-world.
- Abandoned or empty repositories.
- Fork-heavy profiles that claim to build innovative things.

3. Coding patterns
- A single language behind claims of being a polyglot.
- Missing modern frameworks, tests, CI/CD or deployment tooling for the claimed role.
- Little recent activity behind claims of passion.

4. Professional consistency
- Junior-level projects from self-described senior engineers.
- A stack several years behind current trends (typed languages, containers and cloud, testing, AI integration, modern API design).

HOW TO ROAST:
- Be specific and use the developer's own bio words against them.
- Contrast each claim with the evidence.
- Name the trends they are missing and what they should do about it.
- Finish with a blunt but motivating call to action.

TONE: a tired tech lead reviewing an inflated resume. Brutally honest, funny, never cruel about the person, only about the profile.`

// Compose renders the per-request data block. Profile and repository text is embedded verbatim.
// TODO: fence or escape bio and repository names before embedding them; they are untrusted input.
func Compose(bundle *model.ProfileBundle, report model.AnalysisReport) string {
	p := bundle.Profile
	var sb strings.Builder

	sb.WriteString("Profile Analysis:\n")
	fmt.Fprintf(&sb, "- Username: %s\n", p.Username)
	fmt.Fprintf(&sb, "- Bio: \"%s\"\n", p.Bio)
	fmt.Fprintf(&sb, "- Company: %s\n", p.Company)
	fmt.Fprintf(&sb, "- Account age: %d years\n", report.AccountAgeYears)
	fmt.Fprintf(&sb, "- Total repositories: %d\n", report.TotalRepos)
	fmt.Fprintf(&sb, "- Original vs Forks: %d original, %.1f%% forks\n", report.OriginalRepos, report.ForkPercentage)
	fmt.Fprintf(&sb, "- Top languages: %s\n", formatLanguages(report.TopLanguages))
	fmt.Fprintf(&sb, "- Repositories with generic names: %d\n", report.GenericNames)
	fmt.Fprintf(&sb, "- Minimal/empty repositories: %d\n", report.MinimalRepos)
	fmt.Fprintf(&sb, "- Average stars per repo: %.1f\n", report.AverageStars)
	if ms := report.MostStarred; ms != nil {
		fmt.Fprintf(&sb, "- Most starred repo: %s (%d stars)\n", ms.Name, ms.Stars)
	} else {
		sb.WriteString("- Most starred repo: None (0 stars)\n")
	}
	fmt.Fprintf(&sb, "- Recent activity (since %s): %d repositories updated\n", report.RecentCutoff, report.RecentActivity)
	fmt.Fprintf(&sb, "\nSample repository names: %s\n", strings.Join(sampleNames(bundle.Repositories), ", "))

	return sb.String()
}

// UserMessage is the full user message sent to the completion service.
func UserMessage(bundle *model.ProfileBundle, report model.AnalysisReport) string {
	return UserPrefix + Compose(bundle, report)
}

func formatLanguages(langs []model.LanguageCount) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		parts = append(parts, fmt.Sprintf("%s (%d repos)", l.Language, l.Repos))
	}
	return strings.Join(parts, ", ")
}

func sampleNames(repos []model.RepositorySummary) []string {
	n := min(len(repos), sampleRepoLimit)
	names := make([]string, 0, n)
	for _, r := range repos[:n] {
		names = append(names, r.Name)
	}
	return names
}
