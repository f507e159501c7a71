package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"veterinaria-backend/internal/domain/consultas"
	"veterinaria-backend/internal/platform/pagination"
)

// ConsultasRepo implementa consultas.Repository y triaje.ConsultaLookup.
type ConsultasRepo struct {
	db *sql.DB
}

func NewConsultasRepo(db *sql.DB) *ConsultasRepo {
	return &ConsultasRepo{db: db}
}

const consultaCols = `
	id, id_triaje, id_veterinario, tipo_consulta, fecha_consulta,
	motivo_consulta, sintomas_observados, diagnostico_preliminar, observaciones,
	condicion_general, es_seguimiento`

func (r *ConsultasRepo) Create(ctx context.Context, c consultas.Consulta) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO consultas (`+consultaCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID, c.TriajeID, c.VeterinarioID, c.TipoConsulta, c.FechaConsulta,
		c.MotivoConsulta, c.SintomasObservados, c.DiagnosticoPreliminar, c.Observaciones,
		c.CondicionGeneral, c.EsSeguimiento,
	)
	return mapErr(err, "consulta no encontrada")
}

func (r *ConsultasRepo) GetByID(ctx context.Context, id string) (consultas.Consulta, error) {
	return r.getBy(ctx, "id", id, "consulta no encontrada")
}

func (r *ConsultasRepo) GetByTriaje(ctx context.Context, triajeID string) (consultas.Consulta, error) {
	return r.getBy(ctx, "id_triaje", triajeID, "el triaje no tiene consulta")
}

func (r *ConsultasRepo) ExistsByTriaje(ctx context.Context, triajeID string) (bool, error) {
	var exists bool
	err := from(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM consultas WHERE id_triaje = $1)`, triajeID).Scan(&exists)
	return exists, err
}

func (r *ConsultasRepo) getBy(ctx context.Context, col, val, notFoundMsg string) (consultas.Consulta, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+consultaCols+`
		FROM consultas
		WHERE `+col+` = $1
	`, val)

	c, err := scanConsulta(row)
	if err != nil {
		return consultas.Consulta{}, mapErr(err, notFoundMsg)
	}
	return c, nil
}

func (r *ConsultasRepo) List(ctx context.Context, f consultas.ListFilter, p pagination.Params) ([]consultas.Consulta, int, error) {
	where := sq.And{}
	if f.VeterinarioID != "" {
		where = append(where, sq.Eq{"id_veterinario": f.VeterinarioID})
	}
	if f.EsSeguimiento != nil {
		where = append(where, sq.Eq{"es_seguimiento": *f.EsSeguimiento})
	}

	q := from(ctx, r.db)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("consultas").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL, listArgs, err := psql.
		Select(consultaCols).
		From("consultas").
		Where(where).
		OrderBy("fecha_consulta DESC").
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

	out := make([]consultas.Consulta, 0)
	for rows.Next() {
		c, err := scanConsulta(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *ConsultasRepo) CreateDiagnostico(ctx context.Context, d consultas.Diagnostico) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO diagnosticos (
			id, id_consulta, id_patologia, diagnostico,
			tipo_diagnostico, estado_patologia, fecha_diagnostico
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		d.ID, d.ConsultaID, d.PatologiaID, d.Diagnostico,
		d.TipoDiagnostico, d.EstadoPatologia, d.FechaDiagnostico,
	)
	return mapErr(err, "diagnostico no encontrado")
}

func (r *ConsultasRepo) ListDiagnosticos(ctx context.Context, consultaID string) ([]consultas.Diagnostico, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx, `
		SELECT id, id_consulta, id_patologia, diagnostico,
		       tipo_diagnostico, estado_patologia, fecha_diagnostico
		FROM diagnosticos
		WHERE id_consulta = $1
		ORDER BY fecha_diagnostico ASC
	`, consultaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consultas.Diagnostico, 0)
	for rows.Next() {
		var d consultas.Diagnostico
		if err := rows.Scan(
			&d.ID, &d.ConsultaID, &d.PatologiaID, &d.Diagnostico,
			&d.TipoDiagnostico, &d.EstadoPatologia, &d.FechaDiagnostico,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *ConsultasRepo) CreateTratamiento(ctx context.Context, t consultas.Tratamiento) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO tratamientos (
			id, id_consulta, id_patologia, tipo_tratamiento, fecha_inicio, eficacia_tratamiento
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		t.ID, t.ConsultaID, t.PatologiaID, t.TipoTratamiento, t.FechaInicio, t.EficaciaTratamiento,
	)
	return mapErr(err, "tratamiento no encontrado")
}

func (r *ConsultasRepo) ListTratamientos(ctx context.Context, consultaID string) ([]consultas.Tratamiento, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx, `
		SELECT id, id_consulta, id_patologia, tipo_tratamiento, fecha_inicio, eficacia_tratamiento
		FROM tratamientos
		WHERE id_consulta = $1
		ORDER BY fecha_inicio ASC
	`, consultaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consultas.Tratamiento, 0)
	for rows.Next() {
		var t consultas.Tratamiento
		if err := rows.Scan(
			&t.ID, &t.ConsultaID, &t.PatologiaID, &t.TipoTratamiento, &t.FechaInicio, &t.EficaciaTratamiento,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanConsulta(row rowScanner) (consultas.Consulta, error) {
	var c consultas.Consulta
	err := row.Scan(
		&c.ID, &c.TriajeID, &c.VeterinarioID, &c.TipoConsulta, &c.FechaConsulta,
		&c.MotivoConsulta, &c.SintomasObservados, &c.DiagnosticoPreliminar, &c.Observaciones,
		&c.CondicionGeneral, &c.EsSeguimiento,
	)
	return c, err
}
