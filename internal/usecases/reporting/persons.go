package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

// GroupByPerson monta a vista tabular por pessoa: para cada persona_id do
// mapa de atribuições ativas presente no detalhe, resumo (só métricas
// habilitadas) e tabela de detalhe. O join é feito pelo pasillo da linha
// contra o mesmo mapa usado no enriquecimento — um único resolutor temporal
// para todo o sistema.
func GroupByPerson(
	rows []domain.ReturnDetailRow,
	aisleToPerson map[string]string,
	cfg domain.KPIConfig,
) map[string]*domain.PersonTable {
	resultado := make(map[string]*domain.PersonTable)

	if len(rows) == 0 || len(aisleToPerson) == 0 {
		return resultado
	}

	porPersona := make(map[string][]domain.ReturnDetailRow)
	for _, row := range rows {
		personID, ok := aisleToPerson[row.AisleValue()]
		if !ok || personID == "" {
			continue
		}
		porPersona[personID] = append(porPersona[personID], row)
	}

	for personID, g := range porPersona {
		resultado[personID] = &domain.PersonTable{
			Summary: enabledKPIs(g, cfg),
			Table:   FinalTable(g),
		}
	}

	return resultado
}

// PersonDateSeries agrupa por persona_id da linha (campo enriquecido) e por
// data, produzindo a série individual de cada pessoa para gráficas. Linhas
// sem persona_id resolvido ficam fora desta projeção — diferente do desglose
// por bucket da série geral, que as agrupa sob a sentinela.
func PersonDateSeries(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) map[string]*domain.PersonSeries {
	resultado := make(map[string]*domain.PersonSeries)

	porPersona := make(map[string][]domain.ReturnDetailRow)
	for _, row := range rows {
		id := row.PersonIDValue()
		if id == "" {
			continue
		}
		porPersona[id] = append(porPersona[id], row)
	}

	for id, g := range porPersona {
		porFecha := make(map[time.Time][]domain.ReturnDetailRow)
		for _, row := range g {
			porFecha[row.Date] = append(porFecha[row.Date], row)
		}

		fechas := make([]time.Time, 0, len(porFecha))
		for f := range porFecha {
			fechas = append(fechas, f)
		}
		sort.Slice(fechas, func(i, j int) bool { return fechas[i].Before(fechas[j]) })

		series := make([]domain.PersonSeriesPoint, 0, len(fechas))
		for _, f := range fechas {
			iso := f.Format(time.DateOnly)
			series = append(series, domain.PersonSeriesPoint{
				Date:  f,
				Key:   iso,
				Label: iso,
				KPIs:  enabledKPIs(porFecha[f], cfg),
			})
		}

		resultado[id] = &domain.PersonSeries{
			Name:   g[0].PersonNameValue(),
			Series: series,
		}
	}

	return resultado
}
