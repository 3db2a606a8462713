package controllers

import (
	"net/http"

	"github.com/orderlens/backend/api/responses"
	"github.com/orderlens/backend/pkg/config"
	pkgerrors "github.com/orderlens/backend/pkg/errors"
	"github.com/orderlens/backend/pkg/logger"
	"github.com/orderlens/backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-OrderLens-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness. The snapshot cache is the only external
// dependency; when it is disabled the service is ready as soon as the
// dataset is normalized, which happens before the router exists.
func HealthReady(cfg *config.Config, logg *logger.Logger, cache redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-OrderLens-Env", cfg.App.Env)

		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot cache unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
