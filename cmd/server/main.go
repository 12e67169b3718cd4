package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitelog/internal/http/handlers"
	authh "sitelog/internal/http/handlers/auth"
	equipmenth "sitelog/internal/http/handlers/equipment"
	reporth "sitelog/internal/http/handlers/report"
	teamh "sitelog/internal/http/handlers/team"
	userh "sitelog/internal/http/handlers/user"
	workerh "sitelog/internal/http/handlers/worker"
	workrecordh "sitelog/internal/http/handlers/workrecord"
	mw "sitelog/internal/http/middleware"
	"sitelog/internal/lib/config"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/lib/sl"
	repo "sitelog/internal/repository"
	"sitelog/internal/service/auth"
	"sitelog/internal/service/bootstrap"
	"sitelog/internal/service/equipment"
	"sitelog/internal/service/report"
	"sitelog/internal/service/team"
	"sitelog/internal/service/user"
	"sitelog/internal/service/worker"
	"sitelog/internal/service/workrecord"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envProd  = "prod"

	version = "1.0.0"
)

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting construction site management service",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := repo.ApplyMigrations(ctx, db); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	workerRepo := repo.NewWorkerRepo(db, trmsqlx.DefaultCtxGetter)
	workRecordRepo := repo.NewWorkRecordRepo(db, trmsqlx.DefaultCtxGetter)
	equipmentRepo := repo.NewEquipmentRecordRepo(db, trmsqlx.DefaultCtxGetter)
	reportRepo := repo.NewReportRepo(db, trmsqlx.DefaultCtxGetter)

	if cfg.Bootstrap.Enabled {
		seeder := bootstrap.NewSeeder(trManager, userRepo, teamRepo, cfg.Bootstrap)
		seeded, err := seeder.Run(ctx)
		if err != nil {
			// the service still starts; accounts can be registered later
			log.Error("failed to seed default accounts", sl.Err(err))
		} else if seeded {
			log.Info("default accounts created", slog.Int("managers", len(cfg.Bootstrap.Managers)))
		}
	}

	metrics := mw.NewMetrics()
	issuer := credentials.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := auth.NewAuthService(userRepo, issuer)
	userService := user.NewUserService(userRepo)
	teamService := team.NewTeamService(teamRepo)
	workerService := worker.NewWorkerService(workerRepo)
	workRecordService := workrecord.NewWorkRecordService(trManager, workRecordRepo)
	equipmentService := equipment.NewEquipmentService(trManager, equipmentRepo, metrics.EquipmentMerges)
	reportService := report.NewReportService(trManager, reportRepo)

	authHandler := authh.NewAuthHandler(log, authService)
	userHandler := userh.NewUserHandler(log, userService)
	teamHandler := teamh.NewTeamHandler(log, teamService)
	workerHandler := workerh.NewWorkerHandler(log, workerService)
	workRecordHandler := workrecordh.NewWorkRecordHandler(log, workRecordService)
	equipmentHandler := equipmenth.NewEquipmentHandler(log, equipmentService)
	reportHandler := reporth.NewReportHandler(log, reportService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(metrics.Middleware)

	// public methods
	router.Get("/", handlers.Info(version))
	router.Get("/health", handlers.Healthcheck())
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	// authenticated methods, role and team checks happen in services
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(issuer))

		r.Get("/auth/me", authHandler.Me)

		r.Get("/users", userHandler.List)
		r.With(mw.AdminOnly).Post("/users", authHandler.Register)
		r.Get("/users/{id}", userHandler.Get)

		r.Get("/teams", teamHandler.List)
		r.Post("/teams", teamHandler.Add)
		r.Get("/teams/{id}", teamHandler.Get)

		r.Get("/workers", workerHandler.List)
		r.Post("/workers", workerHandler.Create)
		r.Get("/workers/{id}", workerHandler.Get)
		r.Delete("/workers/{id}", workerHandler.Delete)

		r.Route("/work-records", func(r chi.Router) {
			r.Get("/", workRecordHandler.List)
			r.Post("/", workRecordHandler.Create)
			r.Get("/{id}", workRecordHandler.Get)
			r.Put("/{id}", workRecordHandler.Update)
			r.Delete("/{id}", workRecordHandler.Delete)
		})

		r.Route("/equipment-records", func(r chi.Router) {
			r.Get("/", equipmentHandler.List)
			r.Post("/", equipmentHandler.Create)
			r.Get("/{id}", equipmentHandler.Get)
			r.Put("/{id}", equipmentHandler.Update)
			r.Delete("/{id}", equipmentHandler.Delete)
		})

		r.Get("/reports/monthly", reportHandler.Monthly)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
