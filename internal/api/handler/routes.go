package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adboardhq/adboard-api/internal/api/handler/router"
	"github.com/adboardhq/adboard-api/internal/usecases/campaigning"
	"github.com/adboardhq/adboard-api/internal/usecases/media"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/internal/usecases/paying"
	"github.com/adboardhq/adboard-api/internal/usecases/placing"
	"github.com/adboardhq/adboard-api/internal/usecases/pricing"
	"github.com/adboardhq/adboard-api/pkg/middleware"
)

func Healthcheck(cache TariffCache) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cache),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Pricing(service pricing.PricingStore) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pricing",
			Method:      http.MethodGet,
			Handler:     GetPricing(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pricing/:ad_type_id",
			Method:      http.MethodPut,
			Handler:     UpdatePricing(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pricing/history",
			Method:      http.MethodGet,
			Handler:     GetPricingHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func AdRequests(engine campaigning.Engine) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ad-requests",
			Method:      http.MethodPost,
			Handler:     SubmitAdRequest(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			// Atende POST /v1/ad-requests/draft via coringa
			Path:        "/v1/ad-requests/:id",
			Method:      http.MethodPost,
			Handler:     PostAdRequestByID(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			Path:        "/v1/ad-requests/:id/submit",
			Method:      http.MethodPost,
			Handler:     SubmitAdRequestDraft(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			Path:        "/v1/ad-requests/:id",
			Method:      http.MethodGet,
			Handler:     GetAdRequest(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/ad-requests",
			Method:      http.MethodGet,
			Handler:     ListMyAdRequests(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			Path:        "/v1/ad-requests",
			Method:      http.MethodGet,
			Handler:     ListAdRequests(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/ad-requests/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveAdRequest(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/ad-requests/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectAdRequest(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/ad-requests/:id/cancel",
			Method:      http.MethodPost,
			Handler:     CancelAdRequest(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/stats",
			Method:      http.MethodGet,
			Handler:     GetMyStats(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
	}
}

func Payments(coordinator paying.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/payments",
			Method:      http.MethodPost,
			Handler:     ProcessPayment(coordinator),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			Path:        "/v1/me/payments",
			Method:      http.MethodGet,
			Handler:     ListMyPayments(coordinator),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
	}
}

// Placements são rotas públicas: as superfícies de exibição consomem sem token
func Placements(scheduler placing.Scheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/placements/:type",
			Method:  http.MethodGet,
			Handler: GetPlacements(scheduler),
		},
		{
			Path:    "/v1/placements/:id/interactions",
			Method:  http.MethodPost,
			Handler: RecordInteraction(scheduler),
		},
	}
}

func Notifications(dispatcher notifying.Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/notifications",
			Method:      http.MethodGet,
			Handler:     ListMyNotifications(dispatcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			Path:        "/v1/me/notifications/:id/read",
			Method:      http.MethodPost,
			Handler:     MarkNotificationRead(dispatcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
		{
			// Atende POST /v1/me/notifications/read-all via coringa
			Path:        "/v1/me/notifications/:id",
			Method:      http.MethodPost,
			Handler:     PostNotificationByID(dispatcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
	}
}

func Media(uploader media.Uploader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/media/upload",
			Method:      http.MethodPost,
			Handler:     UploadMedia(uploader),
			Middlewares: []func(http.Handler) http.Handler{middleware.VendorOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
