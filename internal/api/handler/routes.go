package handler

import (
	"net/http"

	"github.com/vfg2006/returns-report-api/internal/api/handler/router"
	"github.com/vfg2006/returns-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.ReportGenerator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reportes/devoluciones",
			Method:  http.MethodPost,
			Handler: GenerateReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
