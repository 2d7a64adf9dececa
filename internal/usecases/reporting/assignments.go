package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/returns-report-api/internal/domain"
)

// ActiveAssignments resolve o mapa pasillo → persona_id considerando apenas
// intervalos com alguma sobreposição com [desde, hasta]. É o único resolutor
// temporal do sistema: tanto o enriquecimento por linha quanto a agrupação
// por pessoa usam o mapa devolvido aqui.
//
// Desempate quando mais de um intervalo ativo aponta para o mesmo pasillo:
// vence o intervalo com início mais recente; início aberto conta como o
// início mais antigo possível. Empates mantêm o primeiro intervalo visto.
func ActiveAssignments(asignaciones []domain.Assignment, desde, hasta time.Time) map[string]string {
	activas := make(map[string]string)
	starts := make(map[string]*time.Time)

	for _, a := range asignaciones {
		pasillo := strings.TrimSpace(a.Aisle)
		personID := strings.TrimSpace(a.PersonID)
		if pasillo == "" || personID == "" {
			continue
		}

		if !a.ActiveIn(desde, hasta) {
			continue
		}

		if current, ok := starts[pasillo]; ok && !startsAfter(a.From, current) {
			continue
		}

		activas[pasillo] = personID
		starts[pasillo] = a.From
	}

	return activas
}

// startsAfter compara inícios de intervalo tratando nil como o início mais
// antigo possível.
func startsAfter(candidate, current *time.Time) bool {
	if candidate == nil {
		return false
	}
	if current == nil {
		return true
	}
	return candidate.After(*current)
}
