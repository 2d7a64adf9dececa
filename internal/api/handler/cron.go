package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/returns-report-api/internal/scheduler"
	"github.com/vfg2006/returns-report-api/pkg/apiErrors"
)

const CronJobTypeDailySummary = "daily-summary"

// CronJobServices contém os serviços de cron acionáveis manualmente
type CronJobServices struct {
	DailySummaryService *scheduler.DailySummaryService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailySummary:
			if services.DailySummaryService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo diário não disponível", nil)
				return
			}

			go func() {
				if err := services.DailySummaryService.RunSummary(); err != nil {
					logrus.WithError(err).Error("Erro na execução manual do resumo diário")
				}
			}()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status": "started",
				"job":    cronType,
			})

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", map[string]string{"type": cronType})
		}
	})
}

// GetCronStatus devolve o estado dos jobs agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DailySummaryService != nil {
			status[CronJobTypeDailySummary] = services.DailySummaryService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao codificar status dos cron jobs")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
