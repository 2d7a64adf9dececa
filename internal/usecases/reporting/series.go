package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

// BuildGeneralSeries gera a série temporal geral: um bucket por unidade de
// calendário cobrindo TODA a faixa [desde, hasta], inclusive buckets sem
// dados (zerados). Cada bucket com dados traz o desglose por pessoa; linhas
// sem responsável entram sob a chave sentinela.
func BuildGeneralSeries(
	rows []domain.ReturnDetailRow,
	cfg domain.KPIConfig,
	period Period,
	desde, hasta time.Time,
) []domain.SeriesPoint {
	if len(rows) == 0 {
		return []domain.SeriesPoint{}
	}

	buckets := make(map[string][]domain.ReturnDetailRow)
	for _, row := range rows {
		key := bucketKey(period, row.Date)
		buckets[key] = append(buckets[key], row)
	}

	keys := bucketKeys(period, desde, hasta)

	serie := make([]domain.SeriesPoint, 0, len(keys))
	for _, key := range keys {
		bloque, ok := buckets[key]
		if !ok || len(bloque) == 0 {
			serie = append(serie, emptyPoint(key))
			continue
		}

		serie = append(serie, domain.SeriesPoint{
			Key:     key,
			Label:   key,
			KPIs:    enabledKPIs(bloque, cfg),
			Persons: personBreakdown(bloque, cfg),
		})
	}

	return serie
}

// emptyPoint é um bucket sem dados: as três métricas presentes em zero e
// desglose vazio, independente dos interruptores.
func emptyPoint(key string) domain.SeriesPoint {
	return domain.SeriesPoint{
		Key:     key,
		Label:   key,
		KPIs:    zeroKPIs(),
		Persons: []domain.PersonBreakdown{},
	}
}

// personBreakdown desagrega um bucket por pessoa. Linhas sem persona_id
// entram agrupadas sob a chave sentinela, sempre ao final da lista.
func personBreakdown(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) []domain.PersonBreakdown {
	grupos := make(map[string][]domain.ReturnDetailRow)
	for _, row := range rows {
		id := row.PersonIDValue()
		if id == "" {
			id = domain.UnassignedKey
		}
		grupos[id] = append(grupos[id], row)
	}

	ids := make([]string, 0, len(grupos))
	for id := range grupos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i] == domain.UnassignedKey {
			return false
		}
		if ids[j] == domain.UnassignedKey {
			return true
		}
		return ids[i] < ids[j]
	})

	personas := make([]domain.PersonBreakdown, 0, len(ids))
	for _, id := range ids {
		bloque := grupos[id]

		nombre := domain.UnassignedName
		if id != domain.UnassignedKey {
			nombre = bloque[0].PersonNameValue()
		}

		personas = append(personas, domain.PersonBreakdown{
			ID:   id,
			Name: nombre,
			KPIs: enabledKPIs(bloque, cfg),
		})
	}

	return personas
}

// bucketKey calcula a chave estável (ordenável) do bucket da data.
func bucketKey(period Period, date time.Time) string {
	switch period {
	case PeriodDay:
		return date.Format(time.DateOnly)
	case PeriodWeek:
		return mondayOf(date).Format(time.DateOnly)
	case PeriodYear:
		return date.Format("2006")
	default:
		return date.Format("2006-01")
	}
}

// bucketKeys enumera, em ordem ascendente, as chaves de todas as unidades de
// calendário que tocam [desde, hasta].
func bucketKeys(period Period, desde, hasta time.Time) []string {
	desde = dateOnly(desde)
	hasta = dateOnly(hasta)

	var keys []string

	switch period {
	case PeriodDay:
		for d := desde; !d.After(hasta); d = d.AddDate(0, 0, 1) {
			keys = append(keys, d.Format(time.DateOnly))
		}

	case PeriodWeek:
		// Semanas ISO ancoradas em segunda-feira; a faixa é estendida
		// para fora de modo que a primeira segunda <= desde e o último
		// bucket cubra hasta.
		for m := mondayOf(desde); !m.After(hasta); m = m.AddDate(0, 0, 7) {
			keys = append(keys, m.Format(time.DateOnly))
		}

	case PeriodYear:
		for y := desde.Year(); y <= hasta.Year(); y++ {
			keys = append(keys, time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006"))
		}

	default: // mes
		cur := time.Date(desde.Year(), desde.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(hasta.Year(), hasta.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !cur.After(last) {
			keys = append(keys, cur.Format("2006-01"))
			cur = cur.AddDate(0, 1, 0)
		}
	}

	return keys
}

// mondayOf devolve a segunda-feira da semana ISO da data.
func mondayOf(date time.Time) time.Time {
	date = dateOnly(date)
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return date.AddDate(0, 0, -(weekday - 1))
}
