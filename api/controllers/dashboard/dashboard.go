package dashboard

import (
	"net/http"

	"github.com/orderlens/backend/api/responses"
	"github.com/orderlens/backend/api/validators"
	"github.com/orderlens/backend/internal/insights"
	"github.com/orderlens/backend/pkg/logger"
)

// Meta returns the filterable date bounds so clients can render a picker
// before issuing their first aggregate query.
func Meta(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, service.Bounds())
	}
}

func DailyOrders(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.DailyOrders(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func CustomerSpend(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.CustomerSpend(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func Categories(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Categories(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func Reviews(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Reviews(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func States(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.CustomersByState(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func Cities(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.CustomersByCity(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func Statuses(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Statuses(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func Overview(service insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rng, err := validators.RangeFromQuery(r, service.Bounds())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ctx = logg.WithAggregate(ctx, "overview")
		result, err := service.Overview(ctx, rng)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
