// internal/github/client.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v62/github"

	custom_errors "github-roaster/internal/errors"
	"github-roaster/internal/model"
)

const (
	// GitHub's maximum page size; only the first page is read.
	reposPerPage = 100

	unknownLanguage = "Unknown"
)

// Client is a wrapper around the go-github client.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates an unauthenticated Client for the given API base URL.
// An empty baseURL keeps the public GitHub API; a zero timeout keeps the http.Client default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	gh := github.NewClient(&http.Client{Timeout: timeout})
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		gh.BaseURL = u
	}
	return &Client{
		gh:     gh,
		logger: logger,
	}, nil
}

// FetchProfile retrieves the public profile of username and its most recently updated repositories.
// A non-success profile response yields *errors.ErrUserNotFound and no repository request is made.
// A non-success repository response yields a bundle with no repositories.
// Transport and decoding failures yield *errors.ErrFetch.
func (c *Client) FetchProfile(ctx context.Context, username string) (*model.ProfileBundle, error) {
	logger := c.logger.With("username", username)

	user, resp, err := c.gh.Users.Get(ctx, username)
	if isNonSuccess(resp) {
		logger.Info("Profile lookup failed", "status", resp.StatusCode)
		return nil, &custom_errors.ErrUserNotFound{Username: username}
	}
	if err != nil {
		return nil, &custom_errors.ErrFetch{Err: err}
	}

	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	}
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
	if isNonSuccess(resp) {
		logger.Warn("Repository listing failed, continuing without repositories", "status", resp.StatusCode)
		repos = nil
	} else if err != nil {
		return nil, &custom_errors.ErrFetch{Err: err}
	}

	bundle := &model.ProfileBundle{
		Profile:      toInternalProfile(user),
		Repositories: toPublicRepositories(repos),
	}
	logger.Debug("Fetched profile", "repositories", len(bundle.Repositories))
	return bundle, nil
}

// isNonSuccess reports whether a response was received with a status outside 2xx.
func isNonSuccess(resp *github.Response) bool {
	if resp == nil || resp.Response == nil {
		return false
	}
	return resp.StatusCode < 200 || resp.StatusCode > 299
}

// toInternalProfile translates a github.User object to our internal model.Profile.
func toInternalProfile(u *github.User) model.Profile {
	return model.Profile{
		Username:    u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Location:    u.GetLocation(),
		Blog:        u.GetBlog(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   formatTimestamp(u.CreatedAt),
		UpdatedAt:   formatTimestamp(u.UpdatedAt),
	}
}

// toPublicRepositories keeps only entries explicitly marked as not private, preserving order.
func toPublicRepositories(repos []*github.Repository) []model.RepositorySummary {
	out := make([]model.RepositorySummary, 0, len(repos))
	for _, r := range repos {
		if r == nil || r.Private == nil || *r.Private {
			continue
		}
		out = append(out, toInternalRepository(r))
	}
	return out
}

// toInternalRepository translates a github.Repository object to our internal model.RepositorySummary.
func toInternalRepository(r *github.Repository) model.RepositorySummary {
	language := r.GetLanguage()
	if language == "" {
		language = unknownLanguage
	}
	return model.RepositorySummary{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Language:    language,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		IsFork:      r.GetFork(),
		CreatedAt:   formatTimestamp(r.CreatedAt),
		UpdatedAt:   formatTimestamp(r.UpdatedAt),
		SizeKB:      r.GetSize(),
	}
}

func formatTimestamp(ts *github.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
