package server

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/db"
	"ems/internal/domain/directory"
	"ems/internal/domain/leave"
	"ems/internal/domain/notifications"
	"ems/internal/domain/payroll"
	"ems/internal/domain/review"
	"ems/internal/platform/config"
	"ems/internal/platform/email"
	"ems/internal/platform/metrics"
	authhandler "ems/internal/transport/http/handlers/auth"
	corehandler "ems/internal/transport/http/handlers/core"
	directoryhandler "ems/internal/transport/http/handlers/directory"
	leavehandler "ems/internal/transport/http/handlers/leave"
	payrollhandler "ems/internal/transport/http/handlers/payroll"
	reviewhandler "ems/internal/transport/http/handlers/review"
	"ems/internal/transport/http/middleware"
)

// Services bundles everything the router needs, so tests can compose it with
// in-memory stores.
type Services struct {
	Directory *directory.Service
	Leave     *leave.Service
	Review    *review.Service
	Payroll   *payroll.Service
	Notify    *notifications.Service
	Metrics   *metrics.Collector
}

// NewRouter assembles the middleware chain and every route. ready gates
// /readyz and may be nil.
func NewRouter(cfg config.Config, svcs Services, ready func(ctx context.Context) error) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	if svcs.Metrics != nil {
		router.Use(middleware.Metrics(svcs.Metrics))
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	corehandler.NewHandler(ready, svcs.Metrics).RegisterRoutes(router)

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(svcs.Directory, svcs.Notify, cfg.JWTSecret).RegisterRoutes(r)
		directoryhandler.NewHandler(svcs.Directory).RegisterRoutes(r)
		leavehandler.NewHandler(svcs.Leave, svcs.Notify, svcs.Directory).RegisterRoutes(r)
		reviewhandler.NewHandler(svcs.Review).RegisterRoutes(r)
		payrollhandler.NewHandler(svcs.Payroll).RegisterRoutes(r)
	})

	return router
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	directorySvc := directory.NewService(directory.NewStore(pool))
	notifySvc := notifications.New(email.New(cfg), cfg.EmailFrom)

	svcs := Services{
		Directory: directorySvc,
		Leave:     leave.NewService(leave.NewStore(pool), directorySvc),
		Review:    review.NewService(review.NewStore(pool), directorySvc),
		Payroll:   payroll.NewService(payroll.NewStore(pool), directorySvc),
		Notify:    notifySvc,
	}
	if cfg.MetricsEnabled {
		svcs.Metrics = metrics.New()
	}

	router := NewRouter(cfg, svcs, pool.Ping)

	log.Printf("EMS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
