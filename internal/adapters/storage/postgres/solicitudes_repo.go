package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/platform/pagination"
)

type SolicitudesRepo struct {
	db *sql.DB
}

func NewSolicitudesRepo(db *sql.DB) *SolicitudesRepo {
	return &SolicitudesRepo{db: db}
}

const solicitudCols = `
	id, id_mascota, id_recepcionista, fecha_hora_solicitud, tipo_solicitud, estado`

func (r *SolicitudesRepo) Create(ctx context.Context, s solicitudes.Solicitud) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO solicitudes_atencion (`+solicitudCols+`)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, s.ID, s.MascotaID, s.RecepcionistaID, s.FechaHoraSolicitud, s.Tipo, s.Estado)
	return mapErr(err, "solicitud no encontrada")
}

func (r *SolicitudesRepo) GetByID(ctx context.Context, id string) (solicitudes.Solicitud, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+solicitudCols+`
		FROM solicitudes_atencion
		WHERE id = $1
	`, id)

	var s solicitudes.Solicitud
	err := row.Scan(&s.ID, &s.MascotaID, &s.RecepcionistaID, &s.FechaHoraSolicitud, &s.Tipo, &s.Estado)
	if err != nil {
		return solicitudes.Solicitud{}, mapErr(err, "solicitud no encontrada")
	}
	return s, nil
}

func (r *SolicitudesRepo) Update(ctx context.Context, s solicitudes.Solicitud) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE solicitudes_atencion
		SET estado = $2
		WHERE id = $1
	`, s.ID, s.Estado)
	if err != nil {
		return mapErr(err, "solicitud no encontrada")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "solicitud no encontrada")
	}
	return nil
}

func (r *SolicitudesRepo) List(ctx context.Context, f solicitudes.ListFilter, p pagination.Params) ([]solicitudes.Solicitud, int, error) {
	where := sq.And{}
	if f.Estado != "" {
		where = append(where, sq.Eq{"estado": f.Estado})
	}

	q := from(ctx, r.db)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("solicitudes_atencion").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL, listArgs, err := psql.
		Select(solicitudCols).
		From("solicitudes_atencion").
		Where(where).
		OrderBy("fecha_hora_solicitud DESC").
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

	out := make([]solicitudes.Solicitud, 0)
	for rows.Next() {
		var s solicitudes.Solicitud
		if err := rows.Scan(&s.ID, &s.MascotaID, &s.RecepcionistaID, &s.FechaHoraSolicitud, &s.Tipo, &s.Estado); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}
