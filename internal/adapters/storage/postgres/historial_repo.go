package postgres

import (
	"context"
	"database/sql"

	"veterinaria-backend/internal/domain/historial"
)

type HistorialRepo struct {
	db *sql.DB
}

func NewHistorialRepo(db *sql.DB) *HistorialRepo {
	return &HistorialRepo{db: db}
}

const eventoCols = `
	id, id_mascota, id_consulta, id_diagnostico, id_tratamiento, id_veterinario,
	fecha_evento, tipo_evento, descripcion_evento, peso_momento, edad_meses, observaciones`

func (r *HistorialRepo) Append(ctx context.Context, e historial.Evento) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO historial_eventos (`+eventoCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		e.ID, e.MascotaID,
		toNullString(e.ConsultaID), toNullString(e.DiagnosticoID),
		toNullString(e.TratamientoID), toNullString(e.VeterinarioID),
		e.FechaEvento, e.TipoEvento, e.Descripcion,
		e.PesoMomento, e.EdadMeses, e.Observaciones,
	)
	return mapErr(err, "evento no encontrado")
}

func (r *HistorialRepo) ListByMascota(ctx context.Context, mascotaID string) ([]historial.Evento, error) {
	return r.list(ctx, "id_mascota", mascotaID, "fecha_evento DESC")
}

func (r *HistorialRepo) ListByConsulta(ctx context.Context, consultaID string) ([]historial.Evento, error) {
	return r.list(ctx, "id_consulta", consultaID, "fecha_evento ASC")
}

func (r *HistorialRepo) list(ctx context.Context, col, val, order string) ([]historial.Evento, error) {
	rows, err := from(ctx, r.db).QueryContext(ctx, `
		SELECT `+eventoCols+`
		FROM historial_eventos
		WHERE `+col+` = $1
		ORDER BY `+order+`
	`, val)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]historial.Evento, 0)
	for rows.Next() {
		var e historial.Evento
		var consulta, diagnostico, tratamiento, veterinario sql.NullString
		if err := rows.Scan(
			&e.ID, &e.MascotaID, &consulta, &diagnostico, &tratamiento, &veterinario,
			&e.FechaEvento, &e.TipoEvento, &e.Descripcion,
			&e.PesoMomento, &e.EdadMeses, &e.Observaciones,
		); err != nil {
			return nil, err
		}
		e.ConsultaID = consulta.String
		e.DiagnosticoID = diagnostico.String
		e.TratamientoID = tratamiento.String
		e.VeterinarioID = veterinario.String
		out = append(out, e)
	}
	return out, rows.Err()
}
