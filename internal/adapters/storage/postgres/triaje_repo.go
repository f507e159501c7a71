package postgres

import (
	"context"
	"database/sql"

	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/platform/pagination"
)

type TriajeRepo struct {
	db *sql.DB
}

func NewTriajeRepo(db *sql.DB) *TriajeRepo {
	return &TriajeRepo{db: db}
}

const triajeCols = `
	id, id_solicitud, id_veterinario, fecha_hora_triaje,
	peso_mascota, latido_por_minuto, frecuencia_respiratoria_rpm, temperatura,
	talla, tiempo_capilar, color_mucosas, frecuencia_pulso, porce_deshidratacion,
	condicion_corporal, clasificacion_urgencia`

func (r *TriajeRepo) Create(ctx context.Context, t triaje.Triaje) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO triajes (`+triajeCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		t.ID, t.SolicitudID, t.VeterinarioID, t.FechaHoraTriaje,
		t.PesoMascota, t.LatidoPorMinuto, t.FrecuenciaRespiratoria, t.Temperatura,
		t.Talla, t.TiempoCapilar, t.ColorMucosas, t.FrecuenciaPulso, t.PorceDeshidratacion,
		t.CondicionCorporal, t.ClasificacionUrgencia,
	)
	return mapErr(err, "triaje no encontrado")
}

func (r *TriajeRepo) GetByID(ctx context.Context, id string) (triaje.Triaje, error) {
	return r.getBy(ctx, "id", id, "triaje no encontrado")
}

func (r *TriajeRepo) GetBySolicitud(ctx context.Context, solicitudID string) (triaje.Triaje, error) {
	return r.getBy(ctx, "id_solicitud", solicitudID, "la solicitud no tiene triaje")
}

func (r *TriajeRepo) getBy(ctx context.Context, col, val, notFoundMsg string) (triaje.Triaje, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+triajeCols+`
		FROM triajes
		WHERE `+col+` = $1
	`, val)

	t, err := scanTriaje(row)
	if err != nil {
		return triaje.Triaje{}, mapErr(err, notFoundMsg)
	}
	return t, nil
}

func (r *TriajeRepo) Update(ctx context.Context, t triaje.Triaje) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE triajes
		SET peso_mascota = $2, latido_por_minuto = $3, frecuencia_respiratoria_rpm = $4,
		    temperatura = $5, talla = $6, tiempo_capilar = $7, color_mucosas = $8,
		    frecuencia_pulso = $9, porce_deshidratacion = $10,
		    condicion_corporal = $11, clasificacion_urgencia = $12
		WHERE id = $1
	`,
		t.ID, t.PesoMascota, t.LatidoPorMinuto, t.FrecuenciaRespiratoria,
		t.Temperatura, t.Talla, t.TiempoCapilar, t.ColorMucosas,
		t.FrecuenciaPulso, t.PorceDeshidratacion,
		t.CondicionCorporal, t.ClasificacionUrgencia,
	)
	if err != nil {
		return mapErr(err, "triaje no encontrado")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "triaje no encontrado")
	}
	return nil
}

func (r *TriajeRepo) List(ctx context.Context, p pagination.Params) ([]triaje.Triaje, int, error) {
	q := from(ctx, r.db)

	var total int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM triajes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+triajeCols+`
		FROM triajes
		ORDER BY fecha_hora_triaje DESC
		LIMIT $1 OFFSET $2
	`, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]triaje.Triaje, 0)
	for rows.Next() {
		t, err := scanTriaje(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func scanTriaje(row rowScanner) (triaje.Triaje, error) {
	var t triaje.Triaje
	err := row.Scan(
		&t.ID, &t.SolicitudID, &t.VeterinarioID, &t.FechaHoraTriaje,
		&t.PesoMascota, &t.LatidoPorMinuto, &t.FrecuenciaRespiratoria, &t.Temperatura,
		&t.Talla, &t.TiempoCapilar, &t.ColorMucosas, &t.FrecuenciaPulso, &t.PorceDeshidratacion,
		&t.CondicionCorporal, &t.ClasificacionUrgencia,
	)
	return t, err
}
