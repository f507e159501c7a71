package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	mem "veterinaria-backend/internal/adapters/storage/memory"
	pg "veterinaria-backend/internal/adapters/storage/postgres"
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
	"veterinaria-backend/internal/middleware"
	"veterinaria-backend/internal/ports/tx"
)

type Options struct {
	// Si viene DB, usa Postgres. Si no, repos in-memory (modo dev).
	DB *sql.DB

	Logger zerolog.Logger
}

// consultasStore agrupa lo que las consultas piden a storage más el
// lookup que triaje necesita para congelar triajes con consulta.
type consultasStore interface {
	consultas.Repository
	triaje.ConsultaLookup
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		catalogoRepo    catalogo.Repository
		clientesRepo    clientes.Repository
		recepRepo       recepcionistas.Repository
		vetsRepo        veterinarios.Repository
		mascotasRepo    mascotas.Repository
		historialRepo   historial.Repository
		solicitudesRepo solicitudes.Repository
		triajeRepo      triaje.Repository
		consultasRepo   consultasStore
		citasRepo       citas.Repository
		txRunner        tx.Runner
	)

	if opts.DB != nil {
		catalogoRepo = pg.NewCatalogoRepo(opts.DB)
		clientesRepo = pg.NewClientesRepo(opts.DB)
		recepRepo = pg.NewRecepcionistasRepo(opts.DB)
		vetsRepo = pg.NewVeterinariosRepo(opts.DB)
		mascotasRepo = pg.NewMascotasRepo(opts.DB)
		historialRepo = pg.NewHistorialRepo(opts.DB)
		solicitudesRepo = pg.NewSolicitudesRepo(opts.DB)
		triajeRepo = pg.NewTriajeRepo(opts.DB)
		consultasRepo = pg.NewConsultasRepo(opts.DB)
		citasRepo = pg.NewCitasRepo(opts.DB)
		txRunner = pg.NewTxRunner(opts.DB)
	} else {
		catalogoRepo = mem.NewCatalogoRepo()
		clientesRepo = mem.NewClientesRepo()
		recepRepo = mem.NewRecepcionistasRepo()
		vetsRepo = mem.NewVeterinariosRepo()
		mascotasRepo = mem.NewMascotasRepo()
		historialRepo = mem.NewHistorialRepo()
		solicitudesRepo = mem.NewSolicitudesRepo()
		triajeRepo = mem.NewTriajeRepo()
		consultasRepo = mem.NewConsultasRepo()
		citasRepo = mem.NewCitasRepo()
		txRunner = mem.NewTxRunner()
	}

	// Services por módulo, en orden de dependencia.
	catalogoSvc := catalogo.NewService(catalogoRepo)
	clientesSvc := clientes.NewService(clientesRepo)
	recepSvc := recepcionistas.NewService(recepRepo)
	vetsSvc := veterinarios.NewService(vetsRepo)
	mascotasSvc := mascotas.NewService(mascotasRepo, clientesSvc, catalogoSvc)
	historialSvc := historial.NewService(historialRepo)
	solicitudesSvc := solicitudes.NewService(solicitudesRepo, mascotasSvc, recepSvc)
	triajeSvc := triaje.NewService(triajeRepo, solicitudesSvc, vetsSvc)

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
	// Triaje consulta a consultas solo para saber si el triaje ya quedó
	// congelado; el bind evita el import circular entre ambos paquetes.
	triajeSvc.BindConsultas(consultasRepo)

	citasSvc := citas.NewService(citas.ServiceDeps{
		Repo:         citasRepo,
		ConsultasSvc: consultasSvc,
		CatalogoSvc:  catalogoSvc,
		VetsSvc:      vetsSvc,
		HistorialSvc: historialSvc,
		TxRunner:     txRunner,
	})

	r.Route("/api/v1", func(api chi.Router) {
		catalogo.RegisterRoutes(api, catalogoSvc)
		clientes.RegisterRoutes(api, clientesSvc)
		recepcionistas.RegisterRoutes(api, recepSvc)
		veterinarios.RegisterRoutes(api, vetsSvc)
		mascotas.RegisterRoutes(api, mascotasSvc, historialSvc)
		solicitudes.RegisterRoutes(api, solicitudesSvc)
		triaje.RegisterRoutes(api, triajeSvc)
		consultas.RegisterRoutes(api, consultasSvc)
		citas.RegisterRoutes(api, citasSvc)
	})

	return r
}
