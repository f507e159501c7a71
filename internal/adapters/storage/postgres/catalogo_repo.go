package postgres

import (
	"context"
	"database/sql"

	"veterinaria-backend/internal/domain/catalogo"
)

type CatalogoRepo struct {
	db *sql.DB
}

func NewCatalogoRepo(db *sql.DB) *CatalogoRepo {
	return &CatalogoRepo{db: db}
}

func (r *CatalogoRepo) CreateRaza(ctx context.Context, raza catalogo.Raza) error {
	_, err := from(ctx, r.db).ExecContext(ctx,
		`INSERT INTO razas (id, nombre) VALUES ($1, $2)`, raza.ID, raza.Nombre)
	return mapErr(err, "raza no encontrada")
}

func (r *CatalogoRepo) GetRaza(ctx context.Context, id string) (catalogo.Raza, error) {
	var raza catalogo.Raza
	err := from(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, nombre FROM razas WHERE id = $1`, id).Scan(&raza.ID, &raza.Nombre)
	if err != nil {
		return catalogo.Raza{}, mapErr(err, "raza no encontrada")
	}
	return raza, nil
}

func (r *CatalogoRepo) ListRazas(ctx context.Context) ([]catalogo.Raza, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx,
		`SELECT id, nombre FROM razas ORDER BY nombre ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogo.Raza, 0)
	for rows.Next() {
		var raza catalogo.Raza
		if err := rows.Scan(&raza.ID, &raza.Nombre); err != nil {
			return nil, err
		}
		out = append(out, raza)
	}
	return out, rows.Err()
}

func (r *CatalogoRepo) CreateEspecialidad(ctx context.Context, e catalogo.Especialidad) error {
	_, err := from(ctx, r.db).ExecContext(ctx,
		`INSERT INTO especialidades (id, descripcion) VALUES ($1, $2)`, e.ID, e.Descripcion)
	return mapErr(err, "especialidad no encontrada")
}

func (r *CatalogoRepo) GetEspecialidad(ctx context.Context, id string) (catalogo.Especialidad, error) {
	var e catalogo.Especialidad
	err := from(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, descripcion FROM especialidades WHERE id = $1`, id).Scan(&e.ID, &e.Descripcion)
	if err != nil {
		return catalogo.Especialidad{}, mapErr(err, "especialidad no encontrada")
	}
	return e, nil
}

func (r *CatalogoRepo) ListEspecialidades(ctx context.Context) ([]catalogo.Especialidad, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx,
		`SELECT id, descripcion FROM especialidades ORDER BY descripcion ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogo.Especialidad, 0)
	for rows.Next() {
		var e catalogo.Especialidad
		if err := rows.Scan(&e.ID, &e.Descripcion); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CatalogoRepo) CreateTipoServicio(ctx context.Context, t catalogo.TipoServicio) error {
	_, err := from(ctx, r.db).ExecContext(ctx,
		`INSERT INTO tipos_servicio (id, descripcion) VALUES ($1, $2)`, t.ID, t.Descripcion)
	return mapErr(err, "tipo de servicio no encontrado")
}

func (r *CatalogoRepo) GetTipoServicio(ctx context.Context, id string) (catalogo.TipoServicio, error) {
	var t catalogo.TipoServicio
	err := from(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, descripcion FROM tipos_servicio WHERE id = $1`, id).Scan(&t.ID, &t.Descripcion)
	if err != nil {
		return catalogo.TipoServicio{}, mapErr(err, "tipo de servicio no encontrado")
	}
	return t, nil
}

func (r *CatalogoRepo) ListTiposServicio(ctx context.Context) ([]catalogo.TipoServicio, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx,
		`SELECT id, descripcion FROM tipos_servicio ORDER BY descripcion ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogo.TipoServicio, 0)
	for rows.Next() {
		var t catalogo.TipoServicio
		if err := rows.Scan(&t.ID, &t.Descripcion); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *CatalogoRepo) CreateServicio(ctx context.Context, s catalogo.Servicio) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO servicios (id, id_tipo_servicio, nombre, precio, activo)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.TipoServicioID, s.Nombre, s.Precio, s.Activo)
	return mapErr(err, "servicio no encontrado")
}

func (r *CatalogoRepo) GetServicio(ctx context.Context, id string) (catalogo.Servicio, error) {
	var s catalogo.Servicio
	err := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, id_tipo_servicio, nombre, precio, activo
		FROM servicios WHERE id = $1
	`, id).Scan(&s.ID, &s.TipoServicioID, &s.Nombre, &s.Precio, &s.Activo)
	if err != nil {
		return catalogo.Servicio{}, mapErr(err, "servicio no encontrado")
	}
	return s, nil
}

func (r *CatalogoRepo) ListServicios(ctx context.Context) ([]catalogo.Servicio, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx, `
		SELECT id, id_tipo_servicio, nombre, precio, activo
		FROM servicios ORDER BY nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogo.Servicio, 0)
	for rows.Next() {
		var s catalogo.Servicio
		if err := rows.Scan(&s.ID, &s.TipoServicioID, &s.Nombre, &s.Precio, &s.Activo); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CatalogoRepo) UpdateServicio(ctx context.Context, s catalogo.Servicio) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE servicios
		SET nombre = $2, precio = $3, activo = $4
		WHERE id = $1
	`, s.ID, s.Nombre, s.Precio, s.Activo)
	if err != nil {
		return mapErr(err, "servicio no encontrado")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "servicio no encontrado")
	}
	return nil
}

func (r *CatalogoRepo) CreatePatologia(ctx context.Context, p catalogo.Patologia) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO patologias (id, nombre, especie_afecta, gravedad, es_cronica, es_contagiosa)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Nombre, p.EspecieAfecta, p.Gravedad, p.EsCronica, p.EsContagiosa)
	return mapErr(err, "patologia no encontrada")
}

func (r *CatalogoRepo) GetPatologia(ctx context.Context, id string) (catalogo.Patologia, error) {
	return r.getPatologiaBy(ctx, "id", id)
}

func (r *CatalogoRepo) GetPatologiaByNombre(ctx context.Context, nombre string) (catalogo.Patologia, error) {
	return r.getPatologiaBy(ctx, "nombre", nombre)
}

func (r *CatalogoRepo) getPatologiaBy(ctx context.Context, col, val string) (catalogo.Patologia, error) {
	var p catalogo.Patologia
	err := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, nombre, especie_afecta, gravedad, es_cronica, es_contagiosa
		FROM patologias WHERE `+col+` = $1
	`, val).Scan(&p.ID, &p.Nombre, &p.EspecieAfecta, &p.Gravedad, &p.EsCronica, &p.EsContagiosa)
	if err != nil {
		return catalogo.Patologia{}, mapErr(err, "patologia no encontrada")
	}
	return p, nil
}

func (r *CatalogoRepo) ListPatologias(ctx context.Context) ([]catalogo.Patologia, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx, `
		SELECT id, nombre, especie_afecta, gravedad, es_cronica, es_contagiosa
		FROM patologias ORDER BY nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalogo.Patologia, 0)
	for rows.Next() {
		var p catalogo.Patologia
		if err := rows.Scan(&p.ID, &p.Nombre, &p.EspecieAfecta, &p.Gravedad, &p.EsCronica, &p.EsContagiosa); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
