package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

func TestActiveAssignments(t *testing.T) {
	desde := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    []domain.Assignment
		expected map[string]string
	}{
		{
			name: "Intervalo aberto está ativo para qualquer faixa",
			input: []domain.Assignment{
				{Aisle: "A1", PersonID: "P1"},
			},
			expected: map[string]string{"A1": "P1"},
		},
		{
			name: "Intervalo fora da faixa é descartado",
			input: []domain.Assignment{
				{
					Aisle:    "A1",
					PersonID: "P1",
					From:     timePtr(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
				},
				{
					Aisle:    "A2",
					PersonID: "P2",
					To:       timePtr(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)),
				},
			},
			expected: map[string]string{},
		},
		{
			name: "Sobreposição parcial conta como ativo",
			input: []domain.Assignment{
				{
					Aisle:    "B1",
					PersonID: "P3",
					From:     timePtr(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)),
					To:       timePtr(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)),
				},
			},
			expected: map[string]string{"B1": "P3"},
		},
		{
			name: "Desempate: vence o início mais recente",
			input: []domain.Assignment{
				{
					Aisle:    "A1",
					PersonID: "P1",
					From:     timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
				},
				{
					Aisle:    "A1",
					PersonID: "P2",
					From:     timePtr(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
				},
			},
			expected: map[string]string{"A1": "P2"},
		},
		{
			name: "Desempate: início aberto perde de qualquer início concreto",
			input: []domain.Assignment{
				{Aisle: "A1", PersonID: "P1"},
				{
					Aisle:    "A1",
					PersonID: "P2",
					From:     timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
				},
			},
			expected: map[string]string{"A1": "P2"},
		},
		{
			name: "Desempate independe da ordem de entrada",
			input: []domain.Assignment{
				{
					Aisle:    "A1",
					PersonID: "P2",
					From:     timePtr(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
				},
				{
					Aisle:    "A1",
					PersonID: "P1",
					From:     timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
				},
			},
			expected: map[string]string{"A1": "P2"},
		},
		{
			name: "Pasillo ou persona vazios são ignorados",
			input: []domain.Assignment{
				{Aisle: "  ", PersonID: "P1"},
				{Aisle: "A1", PersonID: ""},
				{Aisle: " A2 ", PersonID: " P2 "},
			},
			expected: map[string]string{"A2": "P2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ActiveAssignments(tt.input, desde, hasta)
			assert.Equal(t, tt.expected, result)
		})
	}
}
