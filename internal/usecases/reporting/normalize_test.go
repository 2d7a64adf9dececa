package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

func TestNormalizeRows(t *testing.T) {
	allKPIs := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	fecha := time.Date(2025, 3, 1, 14, 30, 0, 0, time.FixedZone("X", -3*3600))

	tests := []struct {
		name     string
		rows     []domain.ReturnDetailRow
		cfg      domain.KPIConfig
		validate func(t *testing.T, out []domain.ReturnDetailRow)
	}{
		{
			name: "Linha completa passa sem alterações de valor",
			rows: []domain.ReturnDetailRow{
				{
					Date:    fecha,
					Zone:    stringPtr("Norte"),
					Aisle:   stringPtr("A1"),
					Pieces:  intPtr(3),
					Amount:  floatPtr(120.5),
					Returns: intPtr(1),
				},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, 3, out[0].PiecesValue())
				assert.Equal(t, 120.5, out[0].AmountValue())
				assert.Equal(t, 1, out[0].ReturnsValue())
				assert.Equal(t, "Norte", out[0].ZoneValue())
			},
		},
		{
			name: "Quantity é alias de Pieces quando Pieces está ausente",
			rows: []domain.ReturnDetailRow{
				{Date: fecha, Quantity: intPtr(7)},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, 7, out[0].PiecesValue())
			},
		},
		{
			name: "Defaults: pieces 0, returns 1, amount 0, dimensões vazias",
			rows: []domain.ReturnDetailRow{
				{Date: fecha},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, 0, out[0].PiecesValue())
				assert.Equal(t, 1, out[0].ReturnsValue())
				assert.Equal(t, 0.0, out[0].AmountValue())
				assert.Equal(t, "", out[0].ZoneValue())
				assert.Equal(t, "", out[0].AisleValue())
				assert.Equal(t, domain.UnassignedName, out[0].PersonNameValue())
			},
		},
		{
			name: "Peças negativas são clampadas em zero",
			rows: []domain.ReturnDetailRow{
				{Date: fecha, Pieces: intPtr(-4)},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, 0, out[0].PiecesValue())
			},
		},
		{
			name: "Fallback de importe: Total antes de Subtotal",
			rows: []domain.ReturnDetailRow{
				{Date: fecha, Total: floatPtr(80), Subtotal: floatPtr(70)},
				{Date: fecha, Subtotal: floatPtr(70)},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, 80.0, out[0].AmountValue())
				assert.Equal(t, 70.0, out[1].AmountValue())
			},
		},
		{
			name: "Interruptor de importe desligado força importe zero mesmo com valor presente",
			rows: []domain.ReturnDetailRow{
				{Date: fecha, Amount: floatPtr(999.99), Total: floatPtr(500)},
			},
			cfg: domain.KPIConfig{Amount: false, Pieces: true, Returns: true},
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, 0.0, out[0].AmountValue())
			},
		},
		{
			name: "Dimensões recebem trim",
			rows: []domain.ReturnDetailRow{
				{Date: fecha, Zone: stringPtr("  Norte "), Aisle: stringPtr(" A1")},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, "Norte", *out[0].Zone)
				assert.Equal(t, "A1", *out[0].Aisle)
			},
		},
		{
			name: "Data é truncada para calendário em UTC",
			rows: []domain.ReturnDetailRow{
				{Date: fecha},
			},
			cfg: allKPIs,
			validate: func(t *testing.T, out []domain.ReturnDetailRow) {
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), out[0].Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeRows(tt.rows, tt.cfg)
			assert.Len(t, out, len(tt.rows))
			tt.validate(t, out)
		})
	}
}

func TestNormalizeRowsIdempotente(t *testing.T) {
	cfg := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	rows := []domain.ReturnDetailRow{
		{
			Date:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			Zone:     stringPtr(" Norte "),
			Quantity: intPtr(5),
			Total:    floatPtr(42),
		},
	}

	once := NormalizeRows(rows, cfg)
	twice := NormalizeRows(once, cfg)

	assert.Equal(t, once, twice)
}

func TestNormalizeRowsNaoMutaEntrada(t *testing.T) {
	cfg := domain.KPIConfig{Amount: true, Pieces: true, Returns: true}
	rows := []domain.ReturnDetailRow{
		{Date: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), Quantity: intPtr(5)},
	}

	_ = NormalizeRows(rows, cfg)

	assert.Nil(t, rows[0].Pieces)
	assert.Nil(t, rows[0].Returns)
	assert.Nil(t, rows[0].Amount)
}

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func boolPtr(b bool) *bool { return &b }
