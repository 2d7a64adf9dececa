package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

func TestGroupByPerson(t *testing.T) {
	allKPIs := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	aisleToPerson := map[string]string{
		"A1": "P1",
		"A2": "P1",
		"B1": "P2",
	}

	rows := []domain.ReturnDetailRow{
		detailRow(d1, "A1", 100, 2, "P1", "Ana"),
		detailRow(d2, "A2", 60, 1, "P1", "Ana"),
		detailRow(d1, "B1", 40, 3, "P2", "Bruno"),
		detailRow(d1, "Z9", 999, 9, "", ""), // pasillo sem responsável: fora
	}

	grupos := GroupByPerson(rows, aisleToPerson, allKPIs)

	assert.Len(t, grupos, 2)

	p1 := grupos["P1"]
	assert.NotNil(t, p1)
	assert.Equal(t, 160.0, *p1.Summary.Amount)
	assert.Equal(t, 3, *p1.Summary.Pieces)
	assert.Equal(t, 2, *p1.Summary.Returns)
	assert.Len(t, p1.Table, 2)

	p2 := grupos["P2"]
	assert.NotNil(t, p2)
	assert.Equal(t, 40.0, *p2.Summary.Amount)
	assert.Len(t, p2.Table, 1)
}

func TestGroupByPersonSemAtribuicoes(t *testing.T) {
	allKPIs := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.ReturnDetailRow{
		detailRow(fecha, "A1", 100, 2, "P1", "Ana"),
	}

	assert.Empty(t, GroupByPerson(rows, map[string]string{}, allKPIs))
	assert.Empty(t, GroupByPerson(nil, map[string]string{"A1": "P1"}, allKPIs))
}

func TestPersonDateSeries(t *testing.T) {
	allKPIs := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	rows := []domain.ReturnDetailRow{
		detailRow(d2, "A1", 30, 1, "P1", "Ana"),
		detailRow(d1, "A1", 70, 2, "P1", "Ana"),
		detailRow(d1, "A1", 10, 1, "P1", "Ana"),
		detailRow(d1, "Z9", 999, 9, "", ""), // sem persona_id resolvido: fora
	}

	series := PersonDateSeries(rows, allKPIs)

	assert.Len(t, series, 1)

	ana := series["P1"]
	assert.NotNil(t, ana)
	assert.Equal(t, "Ana", ana.Name)
	assert.Len(t, ana.Series, 2)

	// Pontos ordenados por data, um por fecha, com agregação dentro do dia.
	assert.Equal(t, d1, ana.Series[0].Date)
	assert.Equal(t, "2025-03-01", ana.Series[0].Key)
	assert.Equal(t, ana.Series[0].Key, ana.Series[0].Label)
	assert.Equal(t, 80.0, *ana.Series[0].KPIs.Amount)
	assert.Equal(t, 3, *ana.Series[0].KPIs.Pieces)

	assert.Equal(t, d2, ana.Series[1].Date)
	assert.Equal(t, 30.0, *ana.Series[1].KPIs.Amount)
}
