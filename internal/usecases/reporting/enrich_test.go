package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

func TestEnrichRows(t *testing.T) {
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	aisleToPerson := map[string]string{"A1": "P1", "B1": "P9"}
	persons := map[string]string{"P1": "Ana"}

	rows := []domain.ReturnDetailRow{
		{Date: fecha, Aisle: stringPtr("A1")},
		{Date: fecha, Aisle: stringPtr("B1")}, // responsável fora do diretório
		{Date: fecha, Aisle: stringPtr("Z9")}, // pasillo sem responsável
	}

	enriched := EnrichRows(rows, aisleToPerson, persons)

	assert.Len(t, enriched, 3)

	assert.Equal(t, "P1", enriched[0].PersonIDValue())
	assert.Equal(t, "Ana", enriched[0].PersonNameValue())

	// Persona resolvida mas sem nome no diretório: id fica, nome vira sentinela.
	assert.Equal(t, "P9", enriched[1].PersonIDValue())
	assert.Equal(t, domain.UnassignedName, enriched[1].PersonNameValue())

	assert.Nil(t, enriched[2].PersonID)
	assert.Equal(t, domain.UnassignedName, enriched[2].PersonNameValue())

	// A entrada nunca é mutada.
	assert.Nil(t, rows[0].PersonID)
	assert.Nil(t, rows[0].PersonName)
}
