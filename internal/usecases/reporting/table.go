package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

type tableKey struct {
	fecha   string
	zona    string
	pasillo string
	persona string
}

// FinalTable é a tabela de detalhe mostrada ao usuário: totais por
// fecha + zona + pasillo + persona, ordenados pela tupla de agrupamento.
// As três métricas são sempre somadas aqui, independente dos interruptores
// de KPI — é a única projeção não filtrada por eles.
func FinalTable(rows []domain.ReturnDetailRow) []domain.TableRow {
	if len(rows) == 0 {
		return []domain.TableRow{}
	}

	grupos := make(map[tableKey]*domain.TableRow)

	for _, row := range rows {
		key := tableKey{
			fecha:   row.Date.Format(time.DateOnly),
			zona:    row.ZoneValue(),
			pasillo: row.AisleValue(),
			persona: row.PersonValue(),
		}

		acc, ok := grupos[key]
		if !ok {
			acc = &domain.TableRow{
				Date:   key.fecha,
				Zone:   key.zona,
				Aisle:  key.pasillo,
				Person: key.persona,
			}
			grupos[key] = acc
		}

		acc.Returns += row.ReturnsValue()
		acc.Pieces += row.PiecesValue()
		acc.Amount += row.AmountValue()
	}

	salida := make([]domain.TableRow, 0, len(grupos))
	for _, fila := range grupos {
		salida = append(salida, *fila)
	}

	sort.Slice(salida, func(i, j int) bool {
		a, b := salida[i], salida[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Zone != b.Zone {
			return a.Zone < b.Zone
		}
		if a.Aisle != b.Aisle {
			return a.Aisle < b.Aisle
		}
		return a.Person < b.Person
	})

	return salida
}
