// Package roaster drives one roast request through fetch, analysis, prompt and completion.
package roaster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github-roaster/internal/analysis"
	custom_errors "github-roaster/internal/errors"
	"github-roaster/internal/github"
	"github-roaster/internal/metrics"
	"github-roaster/internal/model"
	"github-roaster/internal/prompt"
)

// GenerationErrorPrefix starts the roast text when the completion service fails.
const GenerationErrorPrefix = "Error generating roast: "

// ProfileFetcher retrieves a profile bundle for a normalized username.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*model.ProfileBundle, error)
}

// Completer generates text for a user message.
type Completer interface {
	Complete(ctx context.Context, userMessage string, temperature float64) (string, error)
}

// Result is the outcome of a roast request that got past the fetch stage.
type Result struct {
	Username string               `json:"username"`
	Analysis model.AnalysisReport `json:"analysis"`
	Roast    string               `json:"roast"`
	// Degraded is set when Roast holds a generation error instead of generated text.
	Degraded bool `json:"degraded"`
}

// Service runs the roast pipeline. It keeps no per-request state.
type Service struct {
	fetcher   ProfileFetcher
	analyzer  *analysis.Analyzer
	completer Completer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService creates a new Service instance.
func NewService(fetcher ProfileFetcher, analyzer *analysis.Analyzer, completer Completer, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		analyzer:  analyzer,
		completer: completer,
		metrics:   m,
		logger:    logger,
	}
}

// Roast normalizes profileInput, fetches and analyzes the profile, and generates a roast.
// Input, not-found and fetch failures are returned as errors. A completion failure is not:
// the result carries the statistics and a roast text starting with GenerationErrorPrefix.
func (s *Service) Roast(ctx context.Context, profileInput string, temperature float64) (*Result, error) {
	if !model.ValidTemperature(temperature) {
		s.metrics.RoastsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, &custom_errors.ErrInvalidTemperature{Value: temperature, Min: model.MinTemperature, Max: model.MaxTemperature}
	}

	username := github.NormalizeUsername(profileInput)
	if username == "" {
		s.metrics.RoastsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, custom_errors.ErrEmptyUsername
	}

	logger := s.logger.With("username", username)
	logger.Info("Roasting profile", "temperature", temperature)

	started := time.Now()
	bundle, err := s.fetcher.FetchProfile(ctx, username)
	s.metrics.ObserveStage("fetch", started)
	if err != nil {
		s.metrics.RoastsTotal.WithLabelValues(fetchOutcome(err)).Inc()
		logger.Info("Profile fetch failed", "error", err)
		return nil, err
	}

	report := s.analyzer.Analyze(bundle)
	logger.Debug("Profile analyzed", "total_repos", report.TotalRepos, "fork_percentage", report.ForkPercentage)

	result := &Result{
		Username: username,
		Analysis: report,
	}

	started = time.Now()
	roast, err := s.completer.Complete(ctx, prompt.UserMessage(bundle, report), temperature)
	s.metrics.ObserveStage("completion", started)
	if err != nil {
		logger.Error("Roast generation failed", "error", err)
		s.metrics.RoastsTotal.WithLabelValues(metrics.OutcomeGenerationError).Inc()
		result.Roast = fmt.Sprintf("%s%v", GenerationErrorPrefix, err)
		result.Degraded = true
		return result, nil
	}

	s.metrics.RoastsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	result.Roast = roast
	return result, nil
}

func fetchOutcome(err error) string {
	var notFound *custom_errors.ErrUserNotFound
	if errors.As(err, &notFound) {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeFetchError
}
