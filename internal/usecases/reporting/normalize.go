package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

// NormalizeRows garante o contrato fixo de colunas sobre as linhas de
// detalhe:
//
//   - Pieces: ausente → alias Quantity → 0; sempre inteiro não negativo
//   - Returns: ausente → 1
//   - Amount: com o interruptor de importe ligado, ausente → Total →
//     Subtotal → 0.0; com o interruptor desligado, forçado a 0.0 sempre
//   - Zone/Aisle/Person: ausente → ""; sempre com trim
//   - PersonName: ausente/vazio → sentinela
//   - Date: truncada para data de calendário em UTC
//
// A transformação é idempotente: aplicar duas vezes produz exatamente a
// mesma tabela. A slice de entrada nunca é mutada.
func NormalizeRows(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) []domain.ReturnDetailRow {
	if len(rows) == 0 {
		return nil
	}

	normalized := make([]domain.ReturnDetailRow, len(rows))

	for i, row := range rows {
		out := row

		out.Date = dateOnly(row.Date)

		pieces := 0
		switch {
		case row.Pieces != nil:
			pieces = *row.Pieces
		case row.Quantity != nil:
			pieces = *row.Quantity
		}
		if pieces < 0 {
			pieces = 0
		}
		out.Pieces = &pieces

		returns := 1
		if row.Returns != nil {
			returns = *row.Returns
		}
		out.Returns = &returns

		amount := 0.0
		if cfg.Amount {
			switch {
			case row.Amount != nil:
				amount = *row.Amount
			case row.Total != nil:
				amount = *row.Total
			case row.Subtotal != nil:
				amount = *row.Subtotal
			}
		}
		out.Amount = &amount

		zone := trimmed(row.Zone)
		out.Zone = &zone

		aisle := trimmed(row.Aisle)
		out.Aisle = &aisle

		person := trimmed(row.Person)
		out.Person = &person

		name := domain.UnassignedName
		if row.PersonName != nil && strings.TrimSpace(*row.PersonName) != "" {
			name = *row.PersonName
		}
		out.PersonName = &name

		normalized[i] = out
	}

	return normalized
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// dateOnly descarta hora e fuso, fixando a linha numa data de calendário.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
