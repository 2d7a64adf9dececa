package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/returns-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

// ReturnsRepository carrega o detalhe analítico de devoluções: uma linha por
// item de cada devolução, com o importe já rateado proporcionalmente às
// peças dentro da devolução pai. O rateio é responsabilidade desta query,
// nunca do serviço de relatórios.
type ReturnsRepository interface {
	DetailByDateRange(desde, hasta time.Time) ([]domain.ReturnDetailRow, error)
}

type returnsRepository struct {
	conn *postgres.Connection
}

func NewReturnsRepository(conn *postgres.Connection) ReturnsRepository {
	return &returnsRepository{conn: conn}
}

func (r *returnsRepository) DetailByDateRange(desde, hasta time.Time) ([]domain.ReturnDetailRow, error) {
	// As devoluções são documentos (items em JSONB); o unnest lateral
	// equivale ao $unwind da origem e o CASE faz o rateio do total.
	query, args, err := squirrel.
		Select(
			"d.fecha",
			"d.zona",
			"COALESCE(i.pasillo, '—') AS pasillo",
			"COALESCE(i.cantidad, 0) AS piezas",
			`CASE WHEN tp.total_piezas > 0
				THEN COALESCE(i.cantidad, 0)::float / tp.total_piezas * COALESCE(d.total, 0)::float
				ELSE 0.0
			END AS importe`,
			"1 AS devoluciones",
		).
		From("devoluciones d").
		JoinClause(`CROSS JOIN LATERAL (
			SELECT COALESCE(SUM((item ->> 'cantidad')::int), 0) AS total_piezas
			FROM jsonb_array_elements(COALESCE(d.items, '[]'::jsonb)) AS item
		) tp`).
		JoinClause(`CROSS JOIN LATERAL jsonb_to_recordset(COALESCE(d.items, '[]'::jsonb))
			AS i(pasillo text, cantidad int)`).
		Where(squirrel.GtOrEq{"d.fecha": desde.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.fecha": hasta.Format(time.DateOnly)}).
		OrderBy("d.fecha ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de detalhe de devoluções")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de detalhe de devoluções")
	}
	defer rows.Close()

	detalle := make([]domain.ReturnDetailRow, 0)
	for rows.Next() {
		fila, err := scanDetailRow(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear detalhe de devoluções")
		}
		detalle = append(detalle, fila)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return detalle, nil
}

func scanDetailRow(rows *sql.Rows) (domain.ReturnDetailRow, error) {
	var (
		fila         domain.ReturnDetailRow
		zona         sql.NullString
		pasillo      sql.NullString
		piezas       sql.NullInt64
		importe      sql.NullFloat64
		devoluciones sql.NullInt64
	)

	err := rows.Scan(&fila.Date, &zona, &pasillo, &piezas, &importe, &devoluciones)
	if err != nil {
		return fila, err
	}

	if zona.Valid {
		fila.Zone = &zona.String
	}
	if pasillo.Valid {
		fila.Aisle = &pasillo.String
	}
	if piezas.Valid {
		v := int(piezas.Int64)
		fila.Pieces = &v
	}
	if importe.Valid {
		fila.Amount = &importe.Float64
	}
	if devoluciones.Valid {
		v := int(devoluciones.Int64)
		fila.Returns = &v
	}

	return fila, nil
}
