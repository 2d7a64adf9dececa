package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

func zonedRow(fecha time.Time, zona, pasillo string, amount float64, pieces int) domain.ReturnDetailRow {
	return domain.ReturnDetailRow{
		Date:    fecha,
		Zone:    stringPtr(zona),
		Aisle:   stringPtr(pasillo),
		Amount:  floatPtr(amount),
		Pieces:  intPtr(pieces),
		Returns: intPtr(1),
	}
}

func TestGroupByZone(t *testing.T) {
	allKPIs := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	rows := []domain.ReturnDetailRow{
		zonedRow(d1, "Norte", "A1", 100, 2),
		zonedRow(d2, "Norte", "A1", 50, 1),
		zonedRow(d1, "Sur", "B1", 30, 3),
		zonedRow(d1, "", "A1", 999, 9), // sem zona: descartada
	}

	grupos := GroupByZone(rows, allKPIs)

	assert.Len(t, grupos, 2)

	norte := grupos["Norte"]
	assert.NotNil(t, norte)
	assert.Equal(t, 150.0, *norte.Summary.Amount)
	assert.Equal(t, 3, *norte.Summary.Pieces)
	assert.Equal(t, 2, *norte.Summary.Returns)

	// A série NÃO é calendarizada: só as duas datas com dados, ascendentes.
	assert.Len(t, norte.Series, 2)
	assert.Equal(t, "2025-03-01", norte.Series[0].Date)
	assert.Equal(t, "2025-03-03", norte.Series[1].Date)
	assert.Equal(t, 100.0, *norte.Series[0].Amount)

	sur := grupos["Sur"]
	assert.NotNil(t, sur)
	assert.Equal(t, 30.0, *sur.Summary.Amount)
}

func TestGroupByAisleDescartaMarcadoresInvalidos(t *testing.T) {
	allKPIs := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.ReturnDetailRow{
		zonedRow(fecha, "Norte", "A1", 10, 1),
		zonedRow(fecha, "Norte", "", 10, 1),
		zonedRow(fecha, "Norte", "-", 10, 1),
		zonedRow(fecha, "Norte", "—", 10, 1),
		zonedRow(fecha, "Norte", "nan", 10, 1),
		zonedRow(fecha, "Norte", "None", 10, 1),
		// Comparação sensível a caixa: "NAN" e "none" são pasillos válidos.
		zonedRow(fecha, "Norte", "NAN", 10, 1),
		zonedRow(fecha, "Norte", "none", 10, 1),
	}

	grupos := GroupByAisle(rows, allKPIs)

	assert.Len(t, grupos, 3)
	assert.Contains(t, grupos, "A1")
	assert.Contains(t, grupos, "NAN")
	assert.Contains(t, grupos, "none")
}

func TestGroupByDimensionSemKPIsHabilitados(t *testing.T) {
	nada := domain.KPIConfig{}
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.ReturnDetailRow{
		zonedRow(fecha, "Norte", "A1", 10, 1),
	}

	assert.Empty(t, GroupByZone(rows, nada))
	assert.Empty(t, GroupByAisle(rows, nada))
}

func TestGroupByDimensionRespeitaInterruptores(t *testing.T) {
	soPiezas := domain.KPIConfig{Pieces: true}
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.ReturnDetailRow{
		zonedRow(fecha, "Norte", "A1", 10, 4),
	}

	grupos := GroupByZone(rows, soPiezas)
	norte := grupos["Norte"]

	assert.Nil(t, norte.Summary.Amount)
	assert.Nil(t, norte.Summary.Returns)
	assert.Equal(t, 4, *norte.Summary.Pieces)

	assert.Nil(t, norte.Series[0].Amount)
	assert.Equal(t, 4, *norte.Series[0].Pieces)
}
