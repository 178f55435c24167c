package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	sessmem "stray-adoption/internal/adapters/session/memory"
	mem "stray-adoption/internal/adapters/storage/memory"
	pg "stray-adoption/internal/adapters/storage/postgres"
	sq "stray-adoption/internal/adapters/storage/sqlite"
	"stray-adoption/internal/domain/adoptions"
	"stray-adoption/internal/domain/animals"
	"stray-adoption/internal/domain/billing"
	"stray-adoption/internal/domain/health"
	"stray-adoption/internal/domain/users"
	"stray-adoption/internal/middleware"
	"stray-adoption/internal/platform/logger"
	"stray-adoption/internal/ports/auth"
)

type Options struct {
	Logger *zap.SugaredLogger

	// Opcional: conexión ya abierta. Si no viene, se resuelve por env
	// (DB_DRIVER + DB_DSN); sin DSN, repos in-memory.
	DB     *sql.DB
	Driver string // sqlite | postgres | memory

	// Opcional: store de sesiones (tests). Default: in-memory.
	Sessions auth.SessionStore
}

type repos struct {
	users     users.Repository
	animals   animals.Repository
	health    health.Repository
	adoptions adoptions.Repository
	billing   billing.Repository
}

// New arma el router completo: storage, servicios, middlewares y rutas.
// También garantiza las cuentas seed, así un deploy limpio ya tiene con
// qué loguearse.
func New(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	rp, err := buildRepos(opts, log)
	if err != nil {
		return nil, err
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = sessmem.NewSessionStore()
	}

	// Servicios por módulo
	usersSvc := users.NewService(rp.users)
	animalsSvc := animals.NewService(rp.animals)
	healthSvc := health.NewService(rp.health)
	adoptionsSvc := adoptions.NewService(rp.adoptions, animalsSvc, usersSvc)
	billingSvc := billing.NewService(billing.DefaultCatalog(), rp.billing)

	if err := usersSvc.EnsureSeedAccounts(context.Background()); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.SessionContext(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, sessions)
	animals.RegisterRoutes(r, animalsSvc, healthSvc, log)
	health.RegisterRoutes(r, healthSvc, animalsSvc, log)
	adoptions.RegisterRoutes(r, adoptionsSvc, log)
	billing.RegisterRoutes(r, billingSvc, log)

	return r, nil
}

func buildRepos(opts Options, log *zap.SugaredLogger) (repos, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	if driver == "" {
		driver = strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	}

	db := opts.DB
	if db == nil && driver != "memory" {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			var err error
			switch driver {
			case "postgres":
				db, err = pg.Open(dsn)
			case "", "sqlite":
				driver = "sqlite"
				db, err = sq.Open(dsn)
			default:
				return repos{}, fmt.Errorf("unknown DB_DRIVER %q", driver)
			}
			if err != nil {
				return repos{}, fmt.Errorf("open %s: %w", driver, err)
			}
		}
	}

	if db == nil {
		log.Infow("storage: in-memory repositories")
		return repos{
			users:     mem.NewUserRepo(),
			animals:   mem.NewAnimalRepo(),
			health:    mem.NewHealthRepo(),
			adoptions: mem.NewAdoptionRepo(),
			billing:   mem.NewBillingRepo(),
		}, nil
	}

	if driver == "postgres" {
		log.Infow("storage: postgres")
		return repos{
			users:     pg.NewUsersRepo(db),
			animals:   pg.NewAnimalsRepo(db),
			health:    pg.NewHealthRepo(db),
			adoptions: pg.NewAdoptionsRepo(db),
			billing:   pg.NewBillingRepo(db),
		}, nil
	}

	// sqlite default
	if err := sq.Migrate(db); err != nil {
		return repos{}, fmt.Errorf("migrate sqlite: %w", err)
	}
	log.Infow("storage: sqlite")
	return repos{
		users:     sq.NewUsersRepo(db),
		animals:   sq.NewAnimalsRepo(db),
		health:    sq.NewHealthRepo(db),
		adoptions: sq.NewAdoptionsRepo(db),
		billing:   sq.NewBillingRepo(db),
	}, nil
}
