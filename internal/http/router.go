// Package httpapi assembles the HTTP surface: middleware chain, health and
// metrics endpoints, and the check-in routes.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gatecheck/internal/checkin/handler"
	"gatecheck/pkg/platform/httputil"
	"gatecheck/pkg/platform/middleware/auth"
	"gatecheck/pkg/platform/middleware/metadata"
	"gatecheck/pkg/platform/middleware/requesttime"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// NewRouter wires the full HTTP surface. The health check reports degraded
// dependencies without failing the endpoint: entrance terminals only need to
// know whether the process is up.
func NewRouter(
	checkin *handler.Handler,
	validator auth.TokenValidator,
	logger *slog.Logger,
	health map[string]HealthChecker,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(metadata.RequestMetadata)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		status := map[string]string{"status": "ok"}
		for name, dep := range health {
			if dep == nil {
				continue
			}
			if err := dep.Health(req.Context()); err != nil {
				status[name] = "unavailable"
				status["status"] = "degraded"
			} else {
				status[name] = "ok"
			}
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	checkin.Register(r, auth.RequireOperator(validator, logger))

	return r
}
