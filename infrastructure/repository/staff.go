package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/returns-report-api/infrastructure/database/postgres"
)

// StaffRepository resolve o diretório de pessoas ativas (id → nome).
// Pessoas inativas ficam de fora; ids ausentes caem na sentinela de
// "sem atribuição" no serviço de relatórios.
type StaffRepository interface {
	ActivePersons() (map[string]string, error)
}

type staffRepository struct {
	conn *postgres.Connection
}

func NewStaffRepository(conn *postgres.Connection) StaffRepository {
	return &staffRepository{conn: conn}
}

func (r *staffRepository) ActivePersons() (map[string]string, error) {
	query, args, err := squirrel.
		Select("p.id", "p.nombre").
		From("personal p").
		Where(squirrel.Eq{"p.activo": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de pessoal ativo")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de pessoal ativo")
	}
	defer rows.Close()

	personas := make(map[string]string)
	for rows.Next() {
		var id, nombre string
		if err := rows.Scan(&id, &nombre); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pessoa")
		}
		personas[id] = nombre
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return personas, nil
}
