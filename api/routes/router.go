package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/orderlens/backend/api/controllers"
	dashboardcontrollers "github.com/orderlens/backend/api/controllers/dashboard"
	"github.com/orderlens/backend/api/middleware"
	"github.com/orderlens/backend/internal/insights"
	"github.com/orderlens/backend/pkg/config"
	"github.com/orderlens/backend/pkg/logger"
	"github.com/orderlens/backend/pkg/metrics"
	"github.com/orderlens/backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cache redis.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	service insights.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, cache))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))
	}

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Get("/meta", dashboardcontrollers.Meta(service, logg))
		r.Get("/daily-orders", dashboardcontrollers.DailyOrders(service, logg))
		r.Get("/customer-spend", dashboardcontrollers.CustomerSpend(service, logg))
		r.Get("/categories", dashboardcontrollers.Categories(service, logg))
		r.Get("/reviews", dashboardcontrollers.Reviews(service, logg))
		r.Route("/geography", func(r chi.Router) {
			r.Get("/states", dashboardcontrollers.States(service, logg))
			r.Get("/cities", dashboardcontrollers.Cities(service, logg))
		})
		r.Get("/statuses", dashboardcontrollers.Statuses(service, logg))
		r.Get("/overview", dashboardcontrollers.Overview(service, logg))
	})

	return r
}
