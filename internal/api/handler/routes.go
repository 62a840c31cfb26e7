package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
		},
	}
}

func Sales(reportingService reporting.ReportingService, syncService syncing.SyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(reportingService),
		},
		{
			Path:    "/v1/sales/sync",
			Method:  http.MethodPost,
			Handler: SyncSales(syncService),
		},
		{
			Path:    "/v1/sales/range",
			Method:  http.MethodGet,
			Handler: GetSalesRange(reportingService),
		},
		{
			Path:    "/v1/sales/products",
			Method:  http.MethodGet,
			Handler: ListProducts(reportingService),
		},
	}
}

func CronJobs(services CronJobServices, cronToken string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronTokenMiddleware(cronToken)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronTokenMiddleware(cronToken)},
		},
	}
}
