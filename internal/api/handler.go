// internal/api/handler.go
package api

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github-roaster/internal/metrics"
	"github-roaster/internal/model"
	"github-roaster/internal/ratelimit"
	"github-roaster/internal/roaster"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"oneDecimal": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
}).ParseFS(templateFS, "templates/index.html"))

// Roaster runs the roast pipeline for one request.
type Roaster interface {
	Roast(ctx context.Context, profileInput string, temperature float64) (*roaster.Result, error)
}

// RouterConfig holds the dependencies of the HTTP layer.
type RouterConfig struct {
	Roaster            Roaster
	Logger             *slog.Logger
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
	Limiter            *ratelimit.Limiter
	DefaultTemperature float64
	RequestTimeout     time.Duration
}

// Handler is the container for API dependencies.
type Handler struct {
	roaster            Roaster
	logger             *slog.Logger
	defaultTemperature float64
}

// NewRouter creates and configures a new chi router with the UI and API routes.
func NewRouter(cfg RouterConfig) http.Handler {
	h := &Handler{
		roaster:            cfg.Roaster,
		logger:             cfg.Logger,
		defaultTemperature: cfg.DefaultTemperature,
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Chi's default logger
	r.Use(middleware.Recoverer)
	r.Use(cfg.Metrics.Middleware)
	r.Use(middleware.Timeout(timeout))

	r.Get("/health", h.healthCheck)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/", h.index)

	r.Group(func(r chi.Router) {
		r.Use(cfg.Limiter.Middleware(cfg.Metrics.RateLimitDropped.Inc))
		r.Post("/roast", h.roastForm)
		r.Post("/v1/roasts", h.createRoast)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type pageData struct {
	Input       string
	Temperature float64
	Username    string
	Result      *roaster.Result
	Error       string
}

// index renders the empty form.
// GET /
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, pageData{Temperature: h.defaultTemperature})
}

// roastForm handles the HTML form submission and renders the result in place.
// POST /roast
func (h *Handler) roastForm(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Input:       strings.TrimSpace(r.FormValue("profile_input")),
		Temperature: h.defaultTemperature,
	}
	if raw := r.FormValue("temperature"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || !model.ValidTemperature(t) {
			data.Error = "Temperature must be a number between 0.1 and 1.0"
			h.renderPage(w, http.StatusBadRequest, data)
			return
		}
		data.Temperature = t
	}

	result, err := h.roaster.Roast(r.Context(), data.Input, data.Temperature)
	if err != nil {
		status := statusFor(err)
		data.Error = err.Error()
		if status == http.StatusInternalServerError {
			h.logger.Error("Roast failed", "error", err)
			data.Error = "Internal server error"
		}
		h.renderPage(w, status, data)
		return
	}

	data.Username = result.Username
	data.Result = result
	h.renderPage(w, http.StatusOK, data)
}

type createRoastRequest struct {
	ProfileInput string   `json:"profile_input"`
	Temperature  *float64 `json:"temperature"`
}

// createRoast runs the pipeline and returns statistics and roast as JSON.
// POST /v1/roasts
func (h *Handler) createRoast(w http.ResponseWriter, r *http.Request) {
	var req createRoastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	temperature := h.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	result, err := h.roaster.Roast(r.Context(), req.ProfileInput, temperature)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Roast failed", "error", err)
			respondWithError(w, status, "Internal server error")
			return
		}
		respondWithError(w, status, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Error("Failed to render page", "error", err)
	}
}
