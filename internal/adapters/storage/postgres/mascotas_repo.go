package postgres

import (
	"context"
	"database/sql"

	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/platform/pagination"
)

type MascotasRepo struct {
	db *sql.DB
}

func NewMascotasRepo(db *sql.DB) *MascotasRepo {
	return &MascotasRepo{db: db}
}

const mascotaCols = `
	id, id_cliente, id_raza, nombre, sexo, color,
	edad_anios, edad_meses, esterilizado, created_at`

func (r *MascotasRepo) Create(ctx context.Context, m mascotas.Mascota) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO mascotas (`+mascotaCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		m.ID, m.ClienteID, m.RazaID, m.Nombre, m.Sexo, m.Color,
		m.EdadAnios, m.EdadMeses, m.Esterilizado, m.CreatedAt,
	)
	return mapErr(err, "mascota no encontrada")
}

func (r *MascotasRepo) GetByID(ctx context.Context, id string) (mascotas.Mascota, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+mascotaCols+`
		FROM mascotas
		WHERE id = $1
	`, id)

	var m mascotas.Mascota
	err := row.Scan(
		&m.ID, &m.ClienteID, &m.RazaID, &m.Nombre, &m.Sexo, &m.Color,
		&m.EdadAnios, &m.EdadMeses, &m.Esterilizado, &m.CreatedAt,
	)
	if err != nil {
		return mascotas.Mascota{}, mapErr(err, "mascota no encontrada")
	}
	return m, nil
}

func (r *MascotasRepo) Update(ctx context.Context, m mascotas.Mascota) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE mascotas
		SET nombre = $2, color = $3, edad_anios = $4, edad_meses = $5, esterilizado = $6
		WHERE id = $1
	`, m.ID, m.Nombre, m.Color, m.EdadAnios, m.EdadMeses, m.Esterilizado)
	if err != nil {
		return mapErr(err, "mascota no encontrada")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "mascota no encontrada")
	}
	return nil
}

func (r *MascotasRepo) List(ctx context.Context, p pagination.Params) ([]mascotas.Mascota, int, error) {
	q := from(ctx, r.db)

	var total int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM mascotas`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+mascotaCols+`
		FROM mascotas
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanMascotas(rows)
	return out, total, err
}

func (r *MascotasRepo) ListByCliente(ctx context.Context, clienteID string) ([]mascotas.Mascota, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx, `
		SELECT `+mascotaCols+`
		FROM mascotas
		WHERE id_cliente = $1
		ORDER BY created_at ASC
	`, clienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMascotas(rows)
}

func scanMascotas(rows *sql.Rows) ([]mascotas.Mascota, error) {
	out := make([]mascotas.Mascota, 0)
	for rows.Next() {
		var m mascotas.Mascota
		if err := rows.Scan(
			&m.ID, &m.ClienteID, &m.RazaID, &m.Nombre, &m.Sexo, &m.Color,
			&m.EdadAnios, &m.EdadMeses, &m.Esterilizado, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
