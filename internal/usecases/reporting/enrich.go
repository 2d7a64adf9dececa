package reporting

import (
	"github.com/vfg2006/returns-report-api/internal/domain"
)

// EnrichRows anexa persona_id e persona_nombre a cada linha de detalhe.
// Função pura de (linhas, mapa pasillo→persona, diretório de pessoas): não
// faz I/O nem toca estado global, e nunca muta a slice de entrada.
//
// Linhas cujo pasillo não tem responsável ativo ficam com PersonID nil e
// recebem o nome sentinela.
func EnrichRows(
	rows []domain.ReturnDetailRow,
	aisleToPerson map[string]string,
	persons map[string]string,
) []domain.ReturnDetailRow {
	if len(rows) == 0 {
		return nil
	}

	enriched := make([]domain.ReturnDetailRow, len(rows))

	for i, row := range rows {
		out := row

		if personID, ok := aisleToPerson[row.AisleValue()]; ok && personID != "" {
			id := personID
			out.PersonID = &id

			name := domain.UnassignedName
			if n, ok := persons[personID]; ok && n != "" {
				name = n
			}
			out.PersonName = &name
		} else {
			out.PersonID = nil
			name := domain.UnassignedName
			out.PersonName = &name
		}

		enriched[i] = out
	}

	return enriched
}
