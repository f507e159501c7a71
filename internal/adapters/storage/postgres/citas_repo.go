package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"veterinaria-backend/internal/domain/citas"
	"veterinaria-backend/internal/platform/pagination"
)

type CitasRepo struct {
	db *sql.DB
}

func NewCitasRepo(db *sql.DB) *CitasRepo {
	return &CitasRepo{db: db}
}

const servicioSolicitadoCols = `
	id, id_consulta, id_servicio, id_veterinario,
	fecha_solicitado, prioridad, estado_examen, comentario_opcional`

func (r *CitasRepo) CreateServicioSolicitado(ctx context.Context, s citas.ServicioSolicitado) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO servicios_solicitados (`+servicioSolicitadoCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		s.ID, s.ConsultaID, s.ServicioID, s.VeterinarioID,
		s.FechaSolicitado, s.Prioridad, s.Estado, s.ComentarioOpcional,
	)
	return mapErr(err, "servicio solicitado no encontrado")
}

func (r *CitasRepo) GetServicioSolicitado(ctx context.Context, id string) (citas.ServicioSolicitado, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+servicioSolicitadoCols+`
		FROM servicios_solicitados
		WHERE id = $1
	`, id)

	var s citas.ServicioSolicitado
	err := row.Scan(
		&s.ID, &s.ConsultaID, &s.ServicioID, &s.VeterinarioID,
		&s.FechaSolicitado, &s.Prioridad, &s.Estado, &s.ComentarioOpcional,
	)
	if err != nil {
		return citas.ServicioSolicitado{}, mapErr(err, "servicio solicitado no encontrado")
	}
	return s, nil
}

func (r *CitasRepo) UpdateServicioSolicitado(ctx context.Context, s citas.ServicioSolicitado) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE servicios_solicitados
		SET prioridad = $2, estado_examen = $3, comentario_opcional = $4
		WHERE id = $1
	`, s.ID, s.Prioridad, s.Estado, s.ComentarioOpcional)
	if err != nil {
		return mapErr(err, "servicio solicitado no encontrado")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "servicio solicitado no encontrado")
	}
	return nil
}

func (r *CitasRepo) ListServiciosSolicitados(ctx context.Context, f citas.ServicioFilter, p pagination.Params) ([]citas.ServicioSolicitado, int, error) {
	where := sq.And{}
	if f.Estado != "" {
		where = append(where, sq.Eq{"estado_examen": f.Estado})
	}
	if f.ConsultaID != "" {
		where = append(where, sq.Eq{"id_consulta": f.ConsultaID})
	}

	q := from(ctx, r.db)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("servicios_solicitados").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL, listArgs, err := psql.
		Select(servicioSolicitadoCols).
		From("servicios_solicitados").
		Where(where).
		OrderBy("fecha_solicitado DESC").
		Limit(uint64(p.Limit())).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := q.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]citas.ServicioSolicitado, 0)
	for rows.Next() {
		var s citas.ServicioSolicitado
		if err := rows.Scan(
			&s.ID, &s.ConsultaID, &s.ServicioID, &s.VeterinarioID,
			&s.FechaSolicitado, &s.Prioridad, &s.Estado, &s.ComentarioOpcional,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

const citaCols = `
	id, id_mascota, id_servicio_solicitado,
	fecha_hora_programada, estado_cita, requiere_ayuno, observaciones`

func (r *CitasRepo) CreateCita(ctx context.Context, c citas.Cita) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO citas (`+citaCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID, c.MascotaID, c.ServicioSolicitadoID,
		c.FechaHoraProgramada, c.Estado, c.RequiereAyuno, c.Observaciones,
	)
	return mapErr(err, "cita no encontrada")
}

func (r *CitasRepo) GetCita(ctx context.Context, id string) (citas.Cita, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+citaCols+`
		FROM citas
		WHERE id = $1
	`, id)

	var c citas.Cita
	err := row.Scan(
		&c.ID, &c.MascotaID, &c.ServicioSolicitadoID,
		&c.FechaHoraProgramada, &c.Estado, &c.RequiereAyuno, &c.Observaciones,
	)
	if err != nil {
		return citas.Cita{}, mapErr(err, "cita no encontrada")
	}
	return c, nil
}

func (r *CitasRepo) UpdateCita(ctx context.Context, c citas.Cita) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE citas
		SET fecha_hora_programada = $2, estado_cita = $3, requiere_ayuno = $4, observaciones = $5
		WHERE id = $1
	`, c.ID, c.FechaHoraProgramada, c.Estado, c.RequiereAyuno, c.Observaciones)
	if err != nil {
		return mapErr(err, "cita no encontrada")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "cita no encontrada")
	}
	return nil
}

func (r *CitasRepo) ListCitas(ctx context.Context, f citas.CitaFilter, p pagination.Params) ([]citas.Cita, int, error) {
	where := sq.And{}
	if f.Estado != "" {
		where = append(where, sq.Eq{"estado_cita": f.Estado})
	}
	if f.MascotaID != "" {
		where = append(where, sq.Eq{"id_mascota": f.MascotaID})
	}

	q := from(ctx, r.db)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("citas").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL, listArgs, err := psql.
		Select(citaCols).
		From("citas").
		Where(where).
		OrderBy("fecha_hora_programada ASC").
		Limit(uint64(p.Limit())).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := q.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]citas.Cita, 0)
	for rows.Next() {
		var c citas.Cita
		if err := rows.Scan(
			&c.ID, &c.MascotaID, &c.ServicioSolicitadoID,
			&c.FechaHoraProgramada, &c.Estado, &c.RequiereAyuno, &c.Observaciones,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *CitasRepo) CreateResultado(ctx context.Context, res citas.ResultadoServicio) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO resultados_servicio (
			id, id_cita, id_veterinario, resultado,
			interpretacion, archivo_adjunto, fecha_realizacion
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		res.ID, res.CitaID, res.VeterinarioID, res.Resultado,
		res.Interpretacion, res.ArchivoAdjunto, res.FechaRealizacion,
	)
	return mapErr(err, "resultado no encontrado")
}

func (r *CitasRepo) GetResultadoByCita(ctx context.Context, citaID string) (citas.ResultadoServicio, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT id, id_cita, id_veterinario, resultado,
		       interpretacion, archivo_adjunto, fecha_realizacion
		FROM resultados_servicio
		WHERE id_cita = $1
	`, citaID)

	var res citas.ResultadoServicio
	err := row.Scan(
		&res.ID, &res.CitaID, &res.VeterinarioID, &res.Resultado,
		&res.Interpretacion, &res.ArchivoAdjunto, &res.FechaRealizacion,
	)
	if err != nil {
		return citas.ResultadoServicio{}, mapErr(err, "la cita no tiene resultado")
	}
	return res, nil
}
