package postgres

import (
	"context"
	"database/sql"

	"veterinaria-backend/internal/domain/recepcionistas"
	"veterinaria-backend/internal/platform/pagination"
)

type RecepcionistasRepo struct {
	db *sql.DB
}

func NewRecepcionistasRepo(db *sql.DB) *RecepcionistasRepo {
	return &RecepcionistasRepo{db: db}
}

const recepcionistaCols = `
	id, nombre, apellido_paterno, apellido_materno,
	dni, telefono, email, fecha_ingreso, turno, estado`

func (r *RecepcionistasRepo) Create(ctx context.Context, rec recepcionistas.Recepcionista) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO recepcionistas (`+recepcionistaCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		rec.ID, rec.Nombre, rec.ApellidoPaterno, rec.ApellidoMaterno,
		rec.DNI, rec.Telefono, rec.Email, rec.FechaIngreso, rec.Turno, rec.Estado,
	)
	return mapErr(err, "recepcionista no encontrada")
}

func (r *RecepcionistasRepo) GetByID(ctx context.Context, id string) (recepcionistas.Recepcionista, error) {
	return r.getBy(ctx, "id", id)
}

func (r *RecepcionistasRepo) GetByDNI(ctx context.Context, dni string) (recepcionistas.Recepcionista, error) {
	return r.getBy(ctx, "dni", dni)
}

func (r *RecepcionistasRepo) GetByEmail(ctx context.Context, email string) (recepcionistas.Recepcionista, error) {
	return r.getBy(ctx, "email", email)
}

func (r *RecepcionistasRepo) getBy(ctx context.Context, col, val string) (recepcionistas.Recepcionista, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+recepcionistaCols+`
		FROM recepcionistas
		WHERE `+col+` = $1
	`, val)

	var rec recepcionistas.Recepcionista
	err := row.Scan(
		&rec.ID, &rec.Nombre, &rec.ApellidoPaterno, &rec.ApellidoMaterno,
		&rec.DNI, &rec.Telefono, &rec.Email, &rec.FechaIngreso, &rec.Turno, &rec.Estado,
	)
	if err != nil {
		return recepcionistas.Recepcionista{}, mapErr(err, "recepcionista no encontrada")
	}
	return rec, nil
}

func (r *RecepcionistasRepo) Update(ctx context.Context, rec recepcionistas.Recepcionista) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE recepcionistas
		SET nombre = $2, apellido_paterno = $3, apellido_materno = $4,
		    telefono = $5, email = $6, turno = $7, estado = $8
		WHERE id = $1
	`,
		rec.ID, rec.Nombre, rec.ApellidoPaterno, rec.ApellidoMaterno,
		rec.Telefono, rec.Email, rec.Turno, rec.Estado,
	)
	if err != nil {
		return mapErr(err, "recepcionista no encontrada")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "recepcionista no encontrada")
	}
	return nil
}

func (r *RecepcionistasRepo) List(ctx context.Context, p pagination.Params) ([]recepcionistas.Recepcionista, int, error) {
	q := from(ctx, r.db)

	var total int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM recepcionistas`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+recepcionistaCols+`
		FROM recepcionistas
		ORDER BY fecha_ingreso DESC
		LIMIT $1 OFFSET $2
	`, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]recepcionistas.Recepcionista, 0)
	for rows.Next() {
		var rec recepcionistas.Recepcionista
		if err := rows.Scan(
			&rec.ID, &rec.Nombre, &rec.ApellidoPaterno, &rec.ApellidoMaterno,
			&rec.DNI, &rec.Telefono, &rec.Email, &rec.FechaIngreso, &rec.Turno, &rec.Estado,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}
