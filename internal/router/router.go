package router

import (
	"context"
	"database/sql"
	"net/http"

	_ "pet-demo-api/docs"
	"pet-demo-api/internal/adapters/storage/instrumented"
	mem "pet-demo-api/internal/adapters/storage/memory"
	pg "pet-demo-api/internal/adapters/storage/postgres"
	"pet-demo-api/internal/domain/pets"
	"pet-demo-api/internal/middleware"
	"pet-demo-api/internal/platform/apierror"
	"pet-demo-api/internal/platform/logger"
	"pet-demo-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	ServiceName    = "Pet Demo REST API Service"
	ServiceVersion = "1.0"
)

type Options struct {
	Logger logger.Logger // nil => sin logs

	// PetRepo tiene prioridad. Si no viene: Postgres si hay DB, si no in-memory.
	PetRepo pets.Repository
	DB      *sql.DB
}

type indexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recover(log))

	r.NotFound(apierror.NotFoundHandler)
	r.MethodNotAllowed(apierror.MethodNotAllowedHandler)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		apierror.WriteJSON(w, http.StatusOK, indexResponse{
			Name:    ServiceName,
			Version: ServiceVersion,
			URL:     pets.AbsoluteURL(req, "/pets"),
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petRepo := opts.PetRepo
	if petRepo == nil {
		if opts.DB != nil {
			petRepo = pg.NewPetsRepo(opts.DB)
		} else {
			petRepo = mem.NewPetRepo()
		}
	}

	petsSvc := pets.NewService(instrumented.NewPetRepo(context.Background(), petRepo))
	pets.RegisterRoutes(r, petsSvc, log)

	return r
}
