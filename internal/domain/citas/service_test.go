package citas_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "veterinaria-backend/internal/adapters/storage/memory"
	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
	"veterinaria-backend/internal/domain/citas"
	"veterinaria-backend/internal/domain/clientes"
	"veterinaria-backend/internal/domain/consultas"
	"veterinaria-backend/internal/domain/historial"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/domain/recepcionistas"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/domain/veterinarios"
	"veterinaria-backend/internal/platform/pagination"
)

// fixture recorre el ciclo completo hasta una consulta abierta, desde la
// que se pueden ordenar servicios auxiliares.
type fixture struct {
	citasSvc     *citas.Service
	catalogoSvc  *catalogo.Service
	historialSvc *historial.Service

	consulta    consultas.Consulta
	mascota     mascotas.Mascota
	veterinario veterinarios.Veterinario
	servicio    catalogo.Servicio
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	catalogoSvc := catalogo.NewService(mem.NewCatalogoRepo())
	clientesSvc := clientes.NewService(mem.NewClientesRepo())
	recepSvc := recepcionistas.NewService(mem.NewRecepcionistasRepo())
	vetsSvc := veterinarios.NewService(mem.NewVeterinariosRepo())
	mascotasSvc := mascotas.NewService(mem.NewMascotasRepo(), clientesSvc, catalogoSvc)
	historialSvc := historial.NewService(mem.NewHistorialRepo())
	solicitudesSvc := solicitudes.NewService(mem.NewSolicitudesRepo(), mascotasSvc, recepSvc)
	triajeSvc := triaje.NewService(mem.NewTriajeRepo(), solicitudesSvc, vetsSvc)

	txRunner := mem.NewTxRunner()
	consultasRepo := mem.NewConsultasRepo()
	consultasSvc := consultas.NewService(consultas.ServiceDeps{
		Repo:           consultasRepo,
		TriajeSvc:      triajeSvc,
		SolicitudesSvc: solicitudesSvc,
		MascotasSvc:    mascotasSvc,
		VetsSvc:        vetsSvc,
		HistorialSvc:   historialSvc,
		CatalogoSvc:    catalogoSvc,
		TxRunner:       txRunner,
	})
	triajeSvc.BindConsultas(consultasRepo)

	citasSvc := citas.NewService(citas.ServiceDeps{
		Repo:         mem.NewCitasRepo(),
		ConsultasSvc: consultasSvc,
		CatalogoSvc:  catalogoSvc,
		VetsSvc:      vetsSvc,
		HistorialSvc: historialSvc,
		TxRunner:     txRunner,
	})

	raza, err := catalogoSvc.CreateRaza(ctx, "Mestizo")
	require.NoError(t, err)

	tipoServ, err := catalogoSvc.CreateTipoServicio(ctx, "Laboratorio")
	require.NoError(t, err)
	serv, err := catalogoSvc.CreateServicio(ctx, catalogo.CreateServicioInput{
		TipoServicioID: tipoServ.ID,
		Nombre:         "Hemograma completo",
		Precio:         80,
	})
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

	tr, err := triajeSvc.Create(ctx, triaje.CreateInput{
		SolicitudID:   sol.ID,
		VeterinarioID: vet.ID,
		Vitals: triaje.Vitals{
			PesoMascota:            12.5,
			LatidoPorMinuto:        110,
			FrecuenciaRespiratoria: 25,
			Temperatura:            38.2,
			FrecuenciaPulso:        100,
		},
		ClasificacionUrgencia: triaje.UrgenciaUrgente,
	})
	require.NoError(t, err)

	c, err := consultasSvc.Crear(ctx, consultas.CreateInput{
		TriajeID:         tr.ID,
		VeterinarioID:    vet.ID,
		TipoConsulta:     "Emergencia digestiva",
		CondicionGeneral: consultas.CondicionRegular,
	})
	require.NoError(t, err)

	return &fixture{
		citasSvc:     citasSvc,
		catalogoSvc:  catalogoSvc,
		historialSvc: historialSvc,
		consulta:     c,
		mascota:      masc,
		veterinario:  vet,
		servicio:     serv,
	}
}

func (f *fixture) servicioCitaInput() citas.ServicioCitaInput {
	return citas.ServicioCitaInput{
		ServicioID:          f.servicio.ID,
		VeterinarioID:       f.veterinario.ID,
		FechaHoraProgramada: time.Now().Add(24 * time.Hour),
	}
}

func TestCrearServicioCita_CreaElPar(t *testing.T) {
	f := newFixture(t)

	ss, cita, err := f.citasSvc.CrearServicioCita(context.Background(), f.consulta.ID, f.servicioCitaInput())
	require.NoError(t, err)

	assert.Equal(t, f.consulta.ID, ss.ConsultaID)
	assert.Equal(t, citas.ExamenSolicitado, ss.Estado)
	assert.Equal(t, citas.PrioridadNormal, ss.Prioridad, "prioridad por defecto")

	assert.Equal(t, ss.ID, cita.ServicioSolicitadoID)
	assert.Equal(t, citas.CitaProgramada, cita.Estado)
	assert.Equal(t, f.mascota.ID, cita.MascotaID, "mascota resuelta desde la consulta")
}

func TestCrearServicioCita_ServicioInactivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalogoSvc.SetServicioActivo(ctx, f.servicio.ID, false)
	require.NoError(t, err)

	_, _, err = f.citasSvc.CrearServicioCita(ctx, f.consulta.ID, f.servicioCitaInput())
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCrearServicioCita_SinFechaProgramada(t *testing.T) {
	f := newFixture(t)

	in := f.servicioCitaInput()
	in.FechaHoraProgramada = time.Time{}
	_, _, err := f.citasSvc.CrearServicioCita(context.Background(), f.consulta.ID, in)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCancelarCita_CancelaElServicio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ss, cita, err := f.citasSvc.CrearServicioCita(ctx, f.consulta.ID, f.servicioCitaInput())
	require.NoError(t, err)

	cancelada, err := f.citasSvc.CancelarCita(ctx, cita.ID)
	require.NoError(t, err)
	assert.Equal(t, citas.CitaCancelada, cancelada.Estado)

	servicios, _, err := f.citasSvc.ListServiciosSolicitados(ctx, citas.ServicioFilter{ConsultaID: f.consulta.ID}, pag())
	require.NoError(t, err)
	require.Len(t, servicios, 1)
	assert.Equal(t, ss.ID, servicios[0].ID)
	assert.Equal(t, citas.ExamenCancelado, servicios[0].Estado)

	// Cancelar dos veces es un no-op.
	_, err = f.citasSvc.CancelarCita(ctx, cita.ID)
	assert.NoError(t, err)
}

func TestRegistrarResultado_CompletaCitaYServicio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, cita, err := f.citasSvc.CrearServicioCita(ctx, f.consulta.ID, f.servicioCitaInput())
	require.NoError(t, err)

	res, err := f.citasSvc.RegistrarResultado(ctx, cita.ID, citas.ResultadoInput{
		VeterinarioID: f.veterinario.ID,
		Resultado:     "Hemograma dentro de parametros normales",
	})
	require.NoError(t, err)
	assert.Equal(t, cita.ID, res.CitaID)

	actualizada, err := f.citasSvc.GetCita(ctx, cita.ID)
	require.NoError(t, err)
	assert.Equal(t, citas.CitaAtendida, actualizada.Estado)

	servicios, _, err := f.citasSvc.ListServiciosSolicitados(ctx, citas.ServicioFilter{ConsultaID: f.consulta.ID}, pag())
	require.NoError(t, err)
	require.Len(t, servicios, 1)
	assert.Equal(t, citas.ExamenCompletado, servicios[0].Estado)

	eventos, err := f.historialSvc.ListByMascota(ctx, f.mascota.ID)
	require.NoError(t, err)
	var tieneServicio bool
	for _, e := range eventos {
		if e.TipoEvento == historial.TipoServicio {
			tieneServicio = true
		}
	}
	assert.True(t, tieneServicio, "el resultado deja evento de historial")
}

func TestRegistrarResultado_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// La cita destino se valida antes de escribir nada.
	_, err := f.citasSvc.RegistrarResultado(ctx, "no-existe", citas.ResultadoInput{
		VeterinarioID: f.veterinario.ID,
		Resultado:     "Resultado suficientemente largo",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, cita, err := f.citasSvc.CrearServicioCita(ctx, f.consulta.ID, f.servicioCitaInput())
	require.NoError(t, err)

	_, err = f.citasSvc.RegistrarResultado(ctx, cita.ID, citas.ResultadoInput{
		VeterinarioID: f.veterinario.ID,
		Resultado:     "ok",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	in := citas.ResultadoInput{
		VeterinarioID: f.veterinario.ID,
		Resultado:     "Hemograma dentro de parametros normales",
	}
	_, err = f.citasSvc.RegistrarResultado(ctx, cita.ID, in)
	require.NoError(t, err)

	// Un resultado por cita.
	_, err = f.citasSvc.RegistrarResultado(ctx, cita.ID, in)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegistrarResultado_CitaCancelada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, cita, err := f.citasSvc.CrearServicioCita(ctx, f.consulta.ID, f.servicioCitaInput())
	require.NoError(t, err)
	_, err = f.citasSvc.CancelarCita(ctx, cita.ID)
	require.NoError(t, err)

	_, err = f.citasSvc.RegistrarResultado(ctx, cita.ID, citas.ResultadoInput{
		VeterinarioID: f.veterinario.ID,
		Resultado:     "Hemograma dentro de parametros normales",
	})
	assert.ErrorIs(t, err, apperr.ErrBadState)
}

func pag() pagination.Params {
	return pagination.Params{Page: 1, PerPage: 20}
}
