package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

// invalidAisles são os marcadores de pasillo sem valor analítico, comparados
// de forma sensível a caixa (conjunto fixo herdado da origem dos dados).
var invalidAisles = map[string]struct{}{
	"":     {},
	"-":    {},
	"—":    {},
	"nan":  {},
	"None": {},
}

// GroupByZone agrupa o detalhe por zona. Linhas sem zona são descartadas.
func GroupByZone(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) map[string]*domain.DimensionGroup {
	return groupByDimension(rows, cfg, func(r domain.ReturnDetailRow) (string, bool) {
		zona := r.ZoneValue()
		return zona, zona != ""
	})
}

// GroupByAisle agrupa o detalhe por pasillo, descartando os marcadores
// inválidos ("", "-", "—", "nan", "None").
func GroupByAisle(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) map[string]*domain.DimensionGroup {
	return groupByDimension(rows, cfg, func(r domain.ReturnDetailRow) (string, bool) {
		pasillo := r.AisleValue()
		_, invalid := invalidAisles[pasillo]
		return pasillo, !invalid
	})
}

// groupByDimension monta, para cada valor válido da dimensão, o resumo e a
// série por data. A série NÃO é calendarizada: só aparecem datas com dados —
// política deliberadamente distinta da série geral.
func groupByDimension(
	rows []domain.ReturnDetailRow,
	cfg domain.KPIConfig,
	dimension func(domain.ReturnDetailRow) (string, bool),
) map[string]*domain.DimensionGroup {
	resultado := make(map[string]*domain.DimensionGroup)

	if !cfg.Amount && !cfg.Pieces && !cfg.Returns {
		return resultado
	}

	grupos := make(map[string][]domain.ReturnDetailRow)
	for _, row := range rows {
		valor, ok := dimension(row)
		if !ok {
			continue
		}
		grupos[valor] = append(grupos[valor], row)
	}

	for valor, g := range grupos {
		resultado[valor] = &domain.DimensionGroup{
			Series:  dimensionSeries(g, cfg),
			Summary: enabledKPIs(g, cfg),
		}
	}

	return resultado
}

func dimensionSeries(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) []domain.DimensionPoint {
	porFecha := make(map[time.Time][]domain.ReturnDetailRow)
	for _, row := range rows {
		porFecha[row.Date] = append(porFecha[row.Date], row)
	}

	fechas := make([]time.Time, 0, len(porFecha))
	for f := range porFecha {
		fechas = append(fechas, f)
	}
	sort.Slice(fechas, func(i, j int) bool { return fechas[i].Before(fechas[j]) })

	series := make([]domain.DimensionPoint, 0, len(fechas))
	for _, f := range fechas {
		kpis := enabledKPIs(porFecha[f], cfg)
		series = append(series, domain.DimensionPoint{
			Date:    f.Format(time.DateOnly),
			Amount:  kpis.Amount,
			Pieces:  kpis.Pieces,
			Returns: kpis.Returns,
		})
	}

	return series
}
