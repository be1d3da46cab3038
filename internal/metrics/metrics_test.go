package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/users/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/users/a", "/users/b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/users/{name}", http.MethodGet, "418")))
}

func TestRoastsTotal(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RoastsTotal.WithLabelValues(OutcomeNotFound).Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoastsTotal.WithLabelValues(OutcomeNotFound)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.RoastsTotal.WithLabelValues(OutcomeSuccess)))
}
