package api

import (
	"encoding/json"
	"errors"
	"net/http"

	custom_errors "github-roaster/internal/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorResponse{Error: message})
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	var (
		notFound *custom_errors.ErrUserNotFound
		fetchErr *custom_errors.ErrFetch
		tempErr  *custom_errors.ErrInvalidTemperature
	)
	switch {
	case errors.Is(err, custom_errors.ErrEmptyUsername), errors.As(err, &tempErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
