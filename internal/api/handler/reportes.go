package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/returns-report-api/internal/domain"
	"github.com/vfg2006/returns-report-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-report-api/pkg/apiErrors"
	"github.com/vfg2006/returns-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GenerateReportRequest é o body aceito pelo endpoint de relatórios.
type GenerateReportRequest struct {
	Desde   string                 `json:"desde"`
	Hasta   string                 `json:"hasta"`
	Agrupar string                 `json:"agrupar"`
	KPIs    *domain.KPIConfigInput `json:"kpis"`
}

// GenerateReport computa o relatório de devoluções para a faixa pedida.
// Faixas inválidas voltam 200 com o resultado de erro estruturado — é uma
// resposta normal do contrato, não uma falha HTTP. Falhas de banco voltam 500.
func GenerateReport(service reporting.ReportGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req GenerateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("reportes: body inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Body JSON inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"desde":   req.Desde,
			"hasta":   req.Hasta,
			"agrupar": req.Agrupar,
		}).Info("reportes: gerando relatório de devoluções")

		report, err := service.Generate(req.Desde, req.Hasta, req.Agrupar, req.KPIs)
		if err != nil {
			logger.WithError(err).Error("reportes: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"filas_tabla": len(report.Table),
			"con_error":   report.Error != "",
		}).Info("reportes: relatório gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reportes: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
