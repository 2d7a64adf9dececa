package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/returns-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

// AssignmentsRepository lista os intervalos pessoa↔pasillo SEM filtro
// temporal: o recorte por faixa de datas é do resolutor no serviço de
// relatórios, não da query.
type AssignmentsRepository interface {
	ListAssignments() ([]domain.Assignment, error)
}

type assignmentsRepository struct {
	conn *postgres.Connection
}

func NewAssignmentsRepository(conn *postgres.Connection) AssignmentsRepository {
	return &assignmentsRepository{conn: conn}
}

func (r *assignmentsRepository) ListAssignments() ([]domain.Assignment, error) {
	query, args, err := squirrel.
		Select("a.pasillo", "a.persona_id", "a.fecha_desde", "a.fecha_hasta").
		From("asignaciones_personal a").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de atribuições")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de atribuições")
	}
	defer rows.Close()

	asignaciones := make([]domain.Assignment, 0)
	for rows.Next() {
		var (
			a     domain.Assignment
			desde sql.NullTime
			hasta sql.NullTime
		)

		if err := rows.Scan(&a.Aisle, &a.PersonID, &desde, &hasta); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear atribuição")
		}

		if desde.Valid {
			a.From = &desde.Time
		}
		if hasta.Valid {
			a.To = &hasta.Time
		}

		asignaciones = append(asignaciones, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return asignaciones, nil
}
