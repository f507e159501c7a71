package postgres

import (
	"context"
	"database/sql"

	"veterinaria-backend/internal/domain/clientes"
	"veterinaria-backend/internal/platform/pagination"
)

type ClientesRepo struct {
	db *sql.DB
}

func NewClientesRepo(db *sql.DB) *ClientesRepo {
	return &ClientesRepo{db: db}
}

const clienteCols = `
	id, nombre, apellido_paterno, apellido_materno,
	dni, telefono, email, direccion, estado, fecha_registro`

func (r *ClientesRepo) Create(ctx context.Context, c clientes.Cliente) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO clientes (`+clienteCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		c.ID, c.Nombre, c.ApellidoPaterno, c.ApellidoMaterno,
		c.DNI, c.Telefono, c.Email, c.Direccion, c.Estado, c.FechaRegistro,
	)
	return mapErr(err, "cliente no encontrado")
}

func (r *ClientesRepo) GetByID(ctx context.Context, id string) (clientes.Cliente, error) {
	return r.getBy(ctx, "id", id)
}

func (r *ClientesRepo) GetByDNI(ctx context.Context, dni string) (clientes.Cliente, error) {
	return r.getBy(ctx, "dni", dni)
}

func (r *ClientesRepo) GetByEmail(ctx context.Context, email string) (clientes.Cliente, error) {
	return r.getBy(ctx, "email", email)
}

func (r *ClientesRepo) getBy(ctx context.Context, col, val string) (clientes.Cliente, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+clienteCols+`
		FROM clientes
		WHERE `+col+` = $1
	`, val)

	var c clientes.Cliente
	err := row.Scan(
		&c.ID, &c.Nombre, &c.ApellidoPaterno, &c.ApellidoMaterno,
		&c.DNI, &c.Telefono, &c.Email, &c.Direccion, &c.Estado, &c.FechaRegistro,
	)
	if err != nil {
		return clientes.Cliente{}, mapErr(err, "cliente no encontrado")
	}
	return c, nil
}

func (r *ClientesRepo) Update(ctx context.Context, c clientes.Cliente) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE clientes
		SET nombre = $2, apellido_paterno = $3, apellido_materno = $4,
		    telefono = $5, email = $6, direccion = $7, estado = $8
		WHERE id = $1
	`,
		c.ID, c.Nombre, c.ApellidoPaterno, c.ApellidoMaterno,
		c.Telefono, c.Email, c.Direccion, c.Estado,
	)
	if err != nil {
		return mapErr(err, "cliente no encontrado")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "cliente no encontrado")
	}
	return nil
}

func (r *ClientesRepo) List(ctx context.Context, p pagination.Params) ([]clientes.Cliente, int, error) {
	q := from(ctx, r.db)

	var total int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+clienteCols+`
		FROM clientes
		ORDER BY fecha_registro DESC
		LIMIT $1 OFFSET $2
	`, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]clientes.Cliente, 0)
	for rows.Next() {
		var c clientes.Cliente
		if err := rows.Scan(
			&c.ID, &c.Nombre, &c.ApellidoPaterno, &c.ApellidoMaterno,
			&c.DNI, &c.Telefono, &c.Email, &c.Direccion, &c.Estado, &c.FechaRegistro,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}
