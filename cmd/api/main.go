package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/smartmart/pos-backend/internal/config"
	"github.com/smartmart/pos-backend/internal/metrics"
	"github.com/smartmart/pos-backend/internal/middleware"
	"github.com/smartmart/pos-backend/internal/modules/accounts"
	"github.com/smartmart/pos-backend/internal/modules/auth"
	"github.com/smartmart/pos-backend/internal/modules/catalog"
	"github.com/smartmart/pos-backend/internal/modules/pos"
	"github.com/smartmart/pos-backend/internal/modules/sales"
	"github.com/smartmart/pos-backend/internal/store"
)

func main() {
	logger := config.NewLogger()
	cfg := config.Load(logger)
	logger.SetLevel(parseLevel(cfg.LogLevel))

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open data directory")
	}
	logger.WithField("data_dir", cfg.DataDir).Info("Record store ready")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(metrics.Middleware)

	// ── Services ────────────────────────────────────────────
	accountsRepo := accounts.NewFileRepository(st)
	accountsService := accounts.NewService(accountsRepo)

	catalogRepo := catalog.NewFileRepository(st)
	catalogService := catalog.NewService(catalogRepo)

	salesRepo := sales.NewFileRepository(st)
	salesService := sales.NewService(salesRepo)

	posService := pos.NewService(catalogRepo, salesService, logger)

	authService := auth.NewService(accountsService, cfg.JWTSecret)

	// ── Handlers ────────────────────────────────────────────
	accountsHandler := accounts.NewHandler(accountsService, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	salesHandler := sales.NewHandler(salesService, logger)
	posHandler := pos.NewHandler(posService, logger)
	authHandler := auth.NewHandler(authService, logger)

	router.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(cfg.JWTSecret, auth.RoleAdmin))
			accountsHandler.RegisterAdminRoutes(r)
			catalogHandler.RegisterAdminRoutes(r)
			salesHandler.RegisterAdminRoutes(r)
		})

		r.Route("/pos", func(r chi.Router) {
			r.Use(middleware.RequireRole(cfg.JWTSecret, auth.RoleCashier))
			catalogHandler.RegisterCashierRoutes(r)
			posHandler.RegisterCashierRoutes(r)
		})
	})

	router.Get("/metrics", metrics.Handler().ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// ── Start Server ─────────────────────────────────────────
	logger.WithField("port", cfg.AppPort).Info("SmartMart API server starting")
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
