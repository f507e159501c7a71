package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/pagination"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type VeterinariosRepo struct {
	db *sql.DB
}

func NewVeterinariosRepo(db *sql.DB) *VeterinariosRepo {
	return &VeterinariosRepo{db: db}
}

const veterinarioCols = `
	id, id_especialidad, codigo_cmvp, tipo_veterinario,
	nombre, apellido_paterno, apellido_materno,
	dni, telefono, email, fecha_ingreso, turno, estado, disposicion`

func (r *VeterinariosRepo) Create(ctx context.Context, v veterinarios.Veterinario) error {
	_, err := from(ctx, r.db).ExecContext(ctx, `
		INSERT INTO veterinarios (`+veterinarioCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		v.ID, toNullString(v.EspecialidadID), v.CodigoCMVP, v.Tipo,
		v.Nombre, v.ApellidoPaterno, v.ApellidoMaterno,
		v.DNI, v.Telefono, v.Email, v.FechaIngreso, v.Turno, v.Estado, v.Disposicion,
	)
	return mapErr(err, "veterinario no encontrado")
}

func (r *VeterinariosRepo) GetByID(ctx context.Context, id string) (veterinarios.Veterinario, error) {
	return r.getBy(ctx, "id", id)
}

func (r *VeterinariosRepo) GetByDNI(ctx context.Context, dni string) (veterinarios.Veterinario, error) {
	return r.getBy(ctx, "dni", dni)
}

func (r *VeterinariosRepo) GetByEmail(ctx context.Context, email string) (veterinarios.Veterinario, error) {
	return r.getBy(ctx, "email", email)
}

func (r *VeterinariosRepo) GetByCodigoCMVP(ctx context.Context, codigo string) (veterinarios.Veterinario, error) {
	return r.getBy(ctx, "codigo_cmvp", codigo)
}

func (r *VeterinariosRepo) getBy(ctx context.Context, col, val string) (veterinarios.Veterinario, error) {
	row := from(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+veterinarioCols+`
		FROM veterinarios
		WHERE `+col+` = $1
	`, val)

	v, err := scanVeterinario(row)
	if err != nil {
		return veterinarios.Veterinario{}, mapErr(err, "veterinario no encontrado")
	}
	return v, nil
}

func (r *VeterinariosRepo) Update(ctx context.Context, v veterinarios.Veterinario) error {
	res, err := from(ctx, r.db).ExecContext(ctx, `
		UPDATE veterinarios
		SET id_especialidad = $2, nombre = $3, apellido_paterno = $4,
		    apellido_materno = $5, telefono = $6, turno = $7,
		    estado = $8, disposicion = $9
		WHERE id = $1
	`,
		v.ID, toNullString(v.EspecialidadID), v.Nombre, v.ApellidoPaterno,
		v.ApellidoMaterno, v.Telefono, v.Turno, v.Estado, v.Disposicion,
	)
	if err != nil {
		return mapErr(err, "veterinario no encontrado")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows, "veterinario no encontrado")
	}
	return nil
}

func (r *VeterinariosRepo) List(ctx context.Context, f veterinarios.ListFilter, p pagination.Params) ([]veterinarios.Veterinario, int, error) {
	where := sq.And{}
	if f.Disposicion != "" {
		where = append(where, sq.Eq{"disposicion": f.Disposicion})
	}
	if f.EspecialidadID != "" {
		where = append(where, sq.Eq{"id_especialidad": f.EspecialidadID})
	}

	q := from(ctx, r.db)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("veterinarios").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL, listArgs, err := psql.
		Select(veterinarioCols).
		From("veterinarios").
		Where(where).
		OrderBy("apellido_paterno ASC").
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

	out := make([]veterinarios.Veterinario, 0)
	for rows.Next() {
		v, err := scanVeterinario(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	return out, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVeterinario(row rowScanner) (veterinarios.Veterinario, error) {
	var v veterinarios.Veterinario
	var especialidad sql.NullString
	err := row.Scan(
		&v.ID, &especialidad, &v.CodigoCMVP, &v.Tipo,
		&v.Nombre, &v.ApellidoPaterno, &v.ApellidoMaterno,
		&v.DNI, &v.Telefono, &v.Email, &v.FechaIngreso, &v.Turno, &v.Estado, &v.Disposicion,
	)
	if err != nil {
		return veterinarios.Veterinario{}, err
	}
	v.EspecialidadID = especialidad.String
	return v, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
