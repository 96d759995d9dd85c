package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sangamhr/kyc-portal/internal"
	"github.com/sangamhr/kyc-portal/internal/auth"
	authPostgres "github.com/sangamhr/kyc-portal/internal/auth/postgres"
	"github.com/sangamhr/kyc-portal/internal/core/events"
	"github.com/sangamhr/kyc-portal/internal/kyc"
	kycPostgres "github.com/sangamhr/kyc-portal/internal/kyc/postgres"
	"github.com/sangamhr/kyc-portal/internal/session"
	"github.com/sangamhr/kyc-portal/internal/transport/rest"
	"github.com/sangamhr/kyc-portal/internal/transport/view"
	"github.com/sangamhr/kyc-portal/internal/user"
	userPostgres "github.com/sangamhr/kyc-portal/internal/user/postgres"
	"github.com/sangamhr/kyc-portal/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server for the KYC portal`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// GORM rides on the already pooled pgx connection.
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	store, err := initSessionStore(config.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	sessions := session.NewManager(store, config.Security.SessionSecret, config.Session.CookieName, config.Session.TTL)

	views, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	eventBus := events.NewEventBus(log)
	registerAuditHandlers(eventBus, log)

	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, auth.Options{
		BCryptCost:                config.Security.BCryptCost,
		AllowLoginAfterSubmission: config.App.AllowLoginAfterSubmission,
	}, log)
	authHandler := auth.NewHandler(authService, sessions, views)

	kycRepo := kycPostgres.NewKYCRepository(gormDB)
	kycService := kyc.NewService(kycRepo, eventBus, log)
	kycHandler := kyc.NewHandler(kycService, sessions, views)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, sessions, authHandler, userHandler, kycHandler, authRepo, config.Server.StaticDir, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

func initSessionStore(cfg internal.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "redis":
		return session.NewRedisStore(cfg.RedisURL)
	default:
		return session.NewMemoryStore(), nil
	}
}

// registerAuditHandlers wires the submission audit trail onto the event bus.
func registerAuditHandlers(bus *events.EventBus, log *slog.Logger) {
	bus.Subscribe(events.EventTypeKYCSubmitted, func(ctx context.Context, event events.Event) error {
		submitted, ok := event.(*events.KYCSubmittedEvent)
		if !ok {
			return fmt.Errorf("unexpected event payload for %s", event.EventType())
		}
		log.Info("kyc record submitted",
			"event_id", submitted.EventID(),
			"employee_code", submitted.EmployeeCode,
			"record_id", submitted.RecordID,
			"submitted_at", submitted.SubmittedAt)
		return nil
	})
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
