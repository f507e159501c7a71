package triaje_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "veterinaria-backend/internal/adapters/storage/memory"
	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
	"veterinaria-backend/internal/domain/clientes"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/domain/recepcionistas"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/domain/veterinarios"
)

type fixture struct {
	triajeSvc      *triaje.Service
	solicitudesSvc *solicitudes.Service
	vetsSvc        *veterinarios.Service

	solicitud   solicitudes.Solicitud
	veterinario veterinarios.Veterinario
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	catalogoSvc := catalogo.NewService(mem.NewCatalogoRepo())
	clientesSvc := clientes.NewService(mem.NewClientesRepo())
	recepSvc := recepcionistas.NewService(mem.NewRecepcionistasRepo())
	vetsSvc := veterinarios.NewService(mem.NewVeterinariosRepo())
	mascotasSvc := mascotas.NewService(mem.NewMascotasRepo(), clientesSvc, catalogoSvc)
	solicitudesSvc := solicitudes.NewService(mem.NewSolicitudesRepo(), mascotasSvc, recepSvc)
	triajeSvc := triaje.NewService(mem.NewTriajeRepo(), solicitudesSvc, vetsSvc)

	raza, err := catalogoSvc.CreateRaza(ctx, "Mestizo")
	require.NoError(t, err)

	cliente, err := clientesSvc.Create(ctx, clientes.CreateInput{
		Nombre:          "Ana",
		ApellidoPaterno: "Ramirez",
		DNI:             "12345678",
		Telefono:        "987654321",
		Email:           "ana@example.com",
	})
	require.NoError(t, err)

	masc, err := mascotasSvc.Create(ctx, mascotas.CreateInput{
		ClienteID: cliente.ID,
		RazaID:    raza.ID,
		Nombre:    "Firulais",
		Sexo:      mascotas.SexoMacho,
		EdadAnios: 2,
		EdadMeses: 3,
	})
	require.NoError(t, err)

	recep, err := recepSvc.Create(ctx, recepcionistas.CreateInput{
		Nombre:          "Lucia",
		ApellidoPaterno: "Torres",
		DNI:             "11112222",
		Telefono:        "911122233",
		Email:           "lucia@example.com",
		Turno:           recepcionistas.TurnoManana,
	})
	require.NoError(t, err)

	vet, err := vetsSvc.Create(ctx, veterinarios.CreateInput{
		CodigoCMVP:      "CMVP-001",
		Tipo:            veterinarios.TipoMedicoGeneral,
		Nombre:          "Carlos",
		ApellidoPaterno: "Quispe",
		DNI:             "33334444",
		Telefono:        "955566677",
		Email:           "carlos@example.com",
		Turno:           veterinarios.TurnoManana,
	})
	require.NoError(t, err)

	sol, err := solicitudesSvc.Create(ctx, solicitudes.CreateInput{
		MascotaID:       masc.ID,
		RecepcionistaID: recep.ID,
		Tipo:            solicitudes.TipoEmergencia,
	})
	require.NoError(t, err)

	return &fixture{
		triajeSvc:      triajeSvc,
		solicitudesSvc: solicitudesSvc,
		vetsSvc:        vetsSvc,
		solicitud:      sol,
		veterinario:    vet,
	}
}

func validVitals() triaje.Vitals {
	return triaje.Vitals{
		PesoMascota:            12.5,
		LatidoPorMinuto:        110,
		FrecuenciaRespiratoria: 25,
		Temperatura:            38.2,
		FrecuenciaPulso:        100,
	}
}

func TestCreate_AvanzaSolicitudAInTriage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr, err := f.triajeSvc.Create(ctx, triaje.CreateInput{
		SolicitudID:           f.solicitud.ID,
		VeterinarioID:         f.veterinario.ID,
		Vitals:                validVitals(),
		ClasificacionUrgencia: triaje.UrgenciaUrgente,
	})
	require.NoError(t, err)
	assert.Equal(t, f.solicitud.ID, tr.SolicitudID)
	assert.Equal(t, triaje.CondicionIdeal, tr.CondicionCorporal, "condicion corporal por defecto")

	sol, err := f.solicitudesSvc.GetByID(ctx, f.solicitud.ID)
	require.NoError(t, err)
	assert.Equal(t, solicitudes.EstadoEnTriaje, sol.Estado)
}

func TestCreate_ValoresDeBordeAceptados(t *testing.T) {
	f := newFixture(t)

	v := validVitals()
	v.Temperatura = 35.0
	v.LatidoPorMinuto = 40
	v.FrecuenciaRespiratoria = 10
	v.FrecuenciaPulso = 30

	_, err := f.triajeSvc.Create(context.Background(), triaje.CreateInput{
		SolicitudID:           f.solicitud.ID,
		VeterinarioID:         f.veterinario.ID,
		Vitals:                v,
		ClasificacionUrgencia: triaje.UrgenciaNoUrgente,
	})
	assert.NoError(t, err)
}

func TestCreate_VitalesFueraDeRango(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*triaje.Vitals)
	}{
		{"peso cero", func(v *triaje.Vitals) { v.PesoMascota = 0 }},
		{"peso excesivo", func(v *triaje.Vitals) { v.PesoMascota = 100.5 }},
		{"latidos bajos", func(v *triaje.Vitals) { v.LatidoPorMinuto = 39 }},
		{"latidos altos", func(v *triaje.Vitals) { v.LatidoPorMinuto = 301 }},
		{"respiracion baja", func(v *triaje.Vitals) { v.FrecuenciaRespiratoria = 9 }},
		{"temperatura baja", func(v *triaje.Vitals) { v.Temperatura = 34.9 }},
		{"temperatura alta", func(v *triaje.Vitals) { v.Temperatura = 42.1 }},
		{"pulso bajo", func(v *triaje.Vitals) { v.FrecuenciaPulso = 29 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := validVitals()
			tc.mutate(&v)
			_, err := f.triajeSvc.Create(ctx, triaje.CreateInput{
				SolicitudID:           f.solicitud.ID,
				VeterinarioID:         f.veterinario.ID,
				Vitals:                v,
				ClasificacionUrgencia: triaje.UrgenciaUrgente,
			})
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestCreate_SolicitudDuplicada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := triaje.CreateInput{
		SolicitudID:           f.solicitud.ID,
		VeterinarioID:         f.veterinario.ID,
		Vitals:                validVitals(),
		ClasificacionUrgencia: triaje.UrgenciaUrgente,
	}
	_, err := f.triajeSvc.Create(ctx, in)
	require.NoError(t, err)

	// La solicitud ya no está Pending, así que el segundo intento cae
	// por estado antes de llegar a la unicidad del repo.
	_, err = f.triajeSvc.Create(ctx, in)
	assert.ErrorIs(t, err, apperr.ErrBadState)
}

func TestCreate_SolicitudInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.triajeSvc.Create(context.Background(), triaje.CreateInput{
		SolicitudID:           "no-existe",
		VeterinarioID:         f.veterinario.ID,
		Vitals:                validVitals(),
		ClasificacionUrgencia: triaje.UrgenciaUrgente,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

type consultaLookupStub struct{ exists bool }

func (c consultaLookupStub) ExistsByTriaje(context.Context, string) (bool, error) {
	return c.exists, nil
}

func TestUpdate_CongeladoConConsulta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr, err := f.triajeSvc.Create(ctx, triaje.CreateInput{
		SolicitudID:           f.solicitud.ID,
		VeterinarioID:         f.veterinario.ID,
		Vitals:                validVitals(),
		ClasificacionUrgencia: triaje.UrgenciaUrgente,
	})
	require.NoError(t, err)

	// Sin consulta encima el triaje se puede corregir.
	f.triajeSvc.BindConsultas(consultaLookupStub{exists: false})
	v := validVitals()
	v.Temperatura = 39.0
	updated, err := f.triajeSvc.Update(ctx, tr.ID, triaje.UpdateInput{Vitals: &v})
	require.NoError(t, err)
	assert.Equal(t, 39.0, updated.Temperatura)

	// Con consulta registrada queda congelado.
	f.triajeSvc.BindConsultas(consultaLookupStub{exists: true})
	_, err = f.triajeSvc.Update(ctx, tr.ID, triaje.UpdateInput{Vitals: &v})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}
