package reporting

import (
	"math"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

// sumRows acumula as três métricas de um conjunto de linhas.
func sumRows(rows []domain.ReturnDetailRow) (amount float64, pieces, returns int) {
	for _, r := range rows {
		amount += r.AmountValue()
		pieces += r.PiecesValue()
		returns += r.ReturnsValue()
	}
	return amount, pieces, returns
}

// enabledKPIs monta o mapa de métricas só com os interruptores habilitados.
// Valores não finitos de importe colapsam para null na serialização.
func enabledKPIs(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) domain.KPIValues {
	amount, pieces, returns := sumRows(rows)

	var kpis domain.KPIValues
	if cfg.Amount {
		kpis.Amount = safeFloat(amount)
	}
	if cfg.Pieces {
		kpis.Pieces = &pieces
	}
	if cfg.Returns {
		kpis.Returns = &returns
	}
	return kpis
}

// zeroKPIs devolve as três métricas presentes em zero, independente dos
// interruptores. É o formato exigido para buckets vazios da série geral.
func zeroKPIs() domain.KPIValues {
	amount := 0.0
	pieces := 0
	returns := 0
	return domain.KPIValues{Amount: &amount, Pieces: &pieces, Returns: &returns}
}

// safeFloat devolve nil para NaN/Inf, cumprindo o contrato JSON-safe.
func safeFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
