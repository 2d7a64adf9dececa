package reporting

import "strings"

// Period é a granularidade efetiva da série geral.
type Period string

const (
	PeriodDay   Period = "dia"
	PeriodWeek  Period = "semana"
	PeriodMonth Period = "mes"
	PeriodYear  Period = "anio"
)

// MapPeriod normaliza o valor de "agrupar" vindo do frontend. Aceita
// variações de caixa e diacríticos (Dia/día, Anio/Año); qualquer valor não
// reconhecido vira mes.
func MapPeriod(agrupar string) Period {
	switch strings.ToLower(strings.TrimSpace(agrupar)) {
	case "dia", "día":
		return PeriodDay
	case "semana":
		return PeriodWeek
	case "anio", "año":
		return PeriodYear
	default:
		return PeriodMonth
	}
}
