package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/employee"
	"hrpay/internal/domain/leave"
	"hrpay/internal/domain/org"
	"hrpay/internal/domain/payroll"
	"hrpay/internal/domain/reports"
	"hrpay/internal/platform/config"
	cryptoutil "hrpay/internal/platform/crypto"
	"hrpay/internal/platform/db"
	"hrpay/internal/platform/metrics"
	audithandler "hrpay/internal/transport/http/handlers/audit"
	authhandler "hrpay/internal/transport/http/handlers/auth"
	employeehandler "hrpay/internal/transport/http/handlers/employee"
	leavehandler "hrpay/internal/transport/http/handlers/leave"
	orghandler "hrpay/internal/transport/http/handlers/org"
	payrollhandler "hrpay/internal/transport/http/handlers/payroll"
	reportshandler "hrpay/internal/transport/http/handlers/reports"
	"hrpay/internal/transport/http/middleware"
)

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

	crypto, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		log.Fatalf("encryption key invalid: %v", err)
	}

	scope := authz.Scope{ScopeAll: cfg.TenantScopeAll}
	auditSvc := audit.New(pool)
	authStore := auth.NewStore(pool)
	employeeStore := employee.NewStore(pool)
	orgStore := org.NewStore(pool)
	leaveStore := leave.NewStore(pool)
	payrollSvc := payroll.NewService(payroll.NewStore(pool), crypto)
	reportsSvc := reports.NewService(reports.NewStore(pool))

	if cfg.MetricsEnabled {
		metrics.Init()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(float64(cfg.RateLimitPerSecond), cfg.RateLimitBurst))
	if cfg.MetricsEnabled {
		router.Use(metrics.Instrument)
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, auditSvc, crypto, cfg.JWTSecret, cfg.AccessTokenTTL, "hrpay")
		authHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			employeeHandler := employeehandler.NewHandler(employeeStore, auditSvc, scope)
			employeeHandler.RegisterRoutes(r)
			employeeHandler.RegisterOnboardingRoutes(r)
			employeeHandler.RegisterExitRoutes(r)

			orgHandler := orghandler.NewHandler(orgStore, auditSvc, scope)
			orgHandler.RegisterRoutes(r)

			leaveHandler := leavehandler.NewHandler(leaveStore, auditSvc)
			leaveHandler.RegisterRoutes(r)

			payrollHandler := payrollhandler.NewHandler(payrollSvc, auditSvc)
			payrollHandler.RegisterRoutes(r)

			reportsHandler := reportshandler.NewHandler(reportsSvc, scope)
			reportsHandler.RegisterRoutes(r)

			auditHandler := audithandler.NewHandler(auditSvc)
			auditHandler.RegisterRoutes(r)
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
