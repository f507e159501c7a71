package consultas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "veterinaria-backend/internal/adapters/storage/memory"
	"veterinaria-backend/internal/domain/apperr"
	"veterinaria-backend/internal/domain/catalogo"
	"veterinaria-backend/internal/domain/clientes"
	"veterinaria-backend/internal/domain/consultas"
	"veterinaria-backend/internal/domain/historial"
	"veterinaria-backend/internal/domain/mascotas"
	"veterinaria-backend/internal/domain/recepcionistas"
	"veterinaria-backend/internal/domain/solicitudes"
	"veterinaria-backend/internal/domain/triaje"
	"veterinaria-backend/internal/domain/veterinarios"
)

// fixture arma el ciclo completo hasta el triaje, listo para abrir una
// consulta encima.
type fixture struct {
	consultasSvc   *consultas.Service
	solicitudesSvc *solicitudes.Service
	vetsSvc        *veterinarios.Service
	historialSvc   *historial.Service
	catalogoSvc    *catalogo.Service

	mascota     mascotas.Mascota
	solicitud   solicitudes.Solicitud
	triaje      triaje.Triaje
	veterinario veterinarios.Veterinario
	patologia   catalogo.Patologia
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

	consultasRepo := mem.NewConsultasRepo()
	consultasSvc := consultas.NewService(consultas.ServiceDeps{
		Repo:           consultasRepo,
		TriajeSvc:      triajeSvc,
		SolicitudesSvc: solicitudesSvc,
		MascotasSvc:    mascotasSvc,
		VetsSvc:        vetsSvc,
		HistorialSvc:   historialSvc,
		CatalogoSvc:    catalogoSvc,
		TxRunner:       mem.NewTxRunner(),
	})
	triajeSvc.BindConsultas(consultasRepo)

	raza, err := catalogoSvc.CreateRaza(ctx, "Mestizo")
	require.NoError(t, err)

	pat, err := catalogoSvc.CreatePatologia(ctx, catalogo.CreatePatologiaInput{
		Nombre:        "Parvovirus",
		EspecieAfecta: catalogo.EspecieDog,
		Gravedad:      catalogo.GravedadGrave,
		EsContagiosa:  true,
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

	return &fixture{
		consultasSvc:   consultasSvc,
		solicitudesSvc: solicitudesSvc,
		vetsSvc:        vetsSvc,
		historialSvc:   historialSvc,
		catalogoSvc:    catalogoSvc,
		mascota:        masc,
		solicitud:      sol,
		triaje:         tr,
		veterinario:    vet,
		patologia:      pat,
	}
}

func (f *fixture) crearConsulta(t *testing.T) consultas.Consulta {
	t.Helper()
	c, err := f.consultasSvc.Crear(context.Background(), consultas.CreateInput{
		TriajeID:         f.triaje.ID,
		VeterinarioID:    f.veterinario.ID,
		TipoConsulta:     "Emergencia digestiva",
		MotivoConsulta:   "Vomitos y decaimiento",
		CondicionGeneral: consultas.CondicionRegular,
	})
	require.NoError(t, err)
	return c
}

func TestCrear_AplicaLosCuatroEfectos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	vet, err := f.vetsSvc.GetByID(ctx, f.veterinario.ID)
	require.NoError(t, err)
	assert.Equal(t, veterinarios.DisposicionOcupado, vet.Disposicion)

	sol, err := f.solicitudesSvc.GetByID(ctx, f.solicitud.ID)
	require.NoError(t, err)
	assert.Equal(t, solicitudes.EstadoEnAtencion, sol.Estado)

	eventos, err := f.historialSvc.ListByConsulta(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, eventos, 1)
	assert.Equal(t, historial.TipoConsulta, eventos[0].TipoEvento)
	require.NotNil(t, eventos[0].PesoMomento)
	assert.Equal(t, 12.5, *eventos[0].PesoMomento, "peso tomado del triaje")
	require.NotNil(t, eventos[0].EdadMeses)
	assert.Equal(t, 27, *eventos[0].EdadMeses)
}

func TestCrear_TriajeYaConsultado(t *testing.T) {
	f := newFixture(t)
	f.crearConsulta(t)

	_, err := f.consultasSvc.Crear(context.Background(), consultas.CreateInput{
		TriajeID:         f.triaje.ID,
		VeterinarioID:    f.veterinario.ID,
		TipoConsulta:     "Segundo intento",
		CondicionGeneral: consultas.CondicionBuena,
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCrear_TipoConsultaCorto(t *testing.T) {
	f := newFixture(t)

	_, err := f.consultasSvc.Crear(context.Background(), consultas.CreateInput{
		TriajeID:         f.triaje.ID,
		VeterinarioID:    f.veterinario.ID,
		TipoConsulta:     "abc",
		CondicionGeneral: consultas.CondicionBuena,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestFinalizar_EsIdempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	_, err := f.consultasSvc.Finalizar(ctx, c.ID)
	require.NoError(t, err)

	vet, err := f.vetsSvc.GetByID(ctx, f.veterinario.ID)
	require.NoError(t, err)
	assert.Equal(t, veterinarios.DisposicionLibre, vet.Disposicion)

	sol, err := f.solicitudesSvc.GetByID(ctx, f.solicitud.ID)
	require.NoError(t, err)
	assert.Equal(t, solicitudes.EstadoCompletada, sol.Estado)

	// Finalizar otra vez re-aplica las mismas asignaciones sin error.
	_, err = f.consultasSvc.Finalizar(ctx, c.ID)
	assert.NoError(t, err)
}

func TestResolverMascota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	masc, err := f.consultasSvc.ResolverMascota(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, f.mascota.ID, masc.ID)
	assert.Equal(t, "Firulais", masc.Nombre)

	_, err = f.consultasSvc.ResolverMascota(ctx, "no-existe")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCrearDiagnostico_DefaultsYEvento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	d, err := f.consultasSvc.CrearDiagnostico(ctx, c.ID, consultas.CreateDiagnosticoInput{
		PatologiaID: f.patologia.ID,
		Diagnostico: "Cuadro compatible con parvovirosis canina",
	})
	require.NoError(t, err)
	assert.Equal(t, consultas.DiagnosticoPresuntivo, d.TipoDiagnostico)
	assert.Equal(t, consultas.PatologiaActiva, d.EstadoPatologia)

	eventos, err := f.historialSvc.ListByConsulta(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, eventos, 2)
	assert.Equal(t, historial.TipoDiagnostico, eventos[1].TipoEvento)
	assert.Equal(t, d.ID, eventos[1].DiagnosticoID)
}

func TestCrearDiagnostico_Invalido(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	_, err := f.consultasSvc.CrearDiagnostico(ctx, c.ID, consultas.CreateDiagnosticoInput{
		PatologiaID: f.patologia.ID,
		Diagnostico: "nada",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.consultasSvc.CrearDiagnostico(ctx, c.ID, consultas.CreateDiagnosticoInput{
		PatologiaID: "no-existe",
		Diagnostico: "Diagnostico suficientemente largo",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCrearTratamiento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	_, err := f.consultasSvc.CrearTratamiento(ctx, c.ID, consultas.CreateTratamientoInput{
		PatologiaID:     f.patologia.ID,
		TipoTratamiento: "Invalido",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	tr, err := f.consultasSvc.CrearTratamiento(ctx, c.ID, consultas.CreateTratamientoInput{
		PatologiaID:     f.patologia.ID,
		TipoTratamiento: consultas.TratamientoMedicamentoso,
	})
	require.NoError(t, err)
	assert.False(t, tr.FechaInicio.IsZero(), "fecha_inicio por defecto es ahora")

	eventos, err := f.historialSvc.ListByConsulta(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, eventos, 2)
	assert.Equal(t, historial.TipoTratamiento, eventos[1].TipoEvento)
	assert.Equal(t, tr.ID, eventos[1].TratamientoID)
}

func TestGetCompleta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.crearConsulta(t)

	_, err := f.consultasSvc.CrearDiagnostico(ctx, c.ID, consultas.CreateDiagnosticoInput{
		PatologiaID: f.patologia.ID,
		Diagnostico: "Cuadro compatible con parvovirosis canina",
	})
	require.NoError(t, err)
	_, err = f.consultasSvc.CrearTratamiento(ctx, c.ID, consultas.CreateTratamientoInput{
		PatologiaID:     f.patologia.ID,
		TipoTratamiento: consultas.TratamientoMedicamentoso,
	})
	require.NoError(t, err)

	full, err := f.consultasSvc.GetCompleta(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, full.Consulta.ID)
	require.NotNil(t, full.Triaje)
	assert.Equal(t, f.triaje.ID, full.Triaje.ID)
	require.NotNil(t, full.Solicitud)
	require.NotNil(t, full.Mascota)
	require.NotNil(t, full.Veterinario)
	assert.Len(t, full.Diagnosticos, 1)
	assert.Len(t, full.Tratamientos, 1)
	assert.GreaterOrEqual(t, len(full.Eventos), 3)
}
