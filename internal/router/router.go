package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "peptide-protocol-tracker/docs"
	kvrepo "peptide-protocol-tracker/internal/adapters/storage/kv"
	mem "peptide-protocol-tracker/internal/adapters/storage/memory"
	pg "peptide-protocol-tracker/internal/adapters/storage/postgres"
	"peptide-protocol-tracker/internal/bootstrap"
	"peptide-protocol-tracker/internal/domain/alerts"
	"peptide-protocol-tracker/internal/domain/calculator"
	"peptide-protocol-tracker/internal/domain/kpis"
	"peptide-protocol-tracker/internal/domain/protocol"
	"peptide-protocol-tracker/internal/domain/schedule"
	"peptide-protocol-tracker/internal/middleware"
	"peptide-protocol-tracker/internal/platform/logger"
	"peptide-protocol-tracker/internal/ports/storage"
)

type Options struct {
	Log logger.Logger // puede ser nil; default NewFromEnv

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a memoria.
	DB *sql.DB

	// SkipSeed evita la siembra de datos demo (tests).
	SkipSeed bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory store", map[string]any{"error": err.Error()})
			}
		}
	}

	var store storage.Store
	if db != nil {
		if err := pg.EnsureSchema(context.Background(), db); err != nil {
			log.Error("ensure schema failed, falling back to memory store", map[string]any{"error": err.Error()})
			store = mem.NewStore()
		} else {
			store = pg.NewStore(db)
		}
	} else {
		store = mem.NewStore()
	}

	// Repos sobre el puerto KV
	protocolRepo := kvrepo.NewProtocolRepo(store)
	alertsRepo := kvrepo.NewAlertsRepo(store)
	presetsRepo := kvrepo.NewPresetsRepo(store)
	kpisRepo := kvrepo.NewKPIsRepo(store)

	// Services por módulo
	protocolSvc := protocol.NewService(protocolRepo)
	alertsSvc := alerts.NewService(alertsRepo)
	calcSvc := calculator.NewService(presetsRepo)
	kpisSvc := kpis.NewService(kpisRepo)

	if !opts.SkipSeed {
		err := bootstrap.Seed(context.Background(), store, bootstrap.Services{
			Protocol: protocolSvc,
			Alerts:   alertsSvc,
			KPIs:     kpisSvc,
		}, log)
		if err != nil {
			log.Error("seed failed", map[string]any{"error": err.Error()})
		}
	}

	// Rutas por módulo
	schedule.RegisterRoutes(r)
	protocol.RegisterRoutes(r, protocolSvc)
	alerts.RegisterRoutes(r, alertsSvc)
	calculator.RegisterRoutes(r, calcSvc)
	kpis.RegisterRoutes(r, kpisSvc)

	return r
}
