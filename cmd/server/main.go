package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vedaimport/internal/config"
	"vedaimport/internal/domain/repositories"
	"vedaimport/internal/fetch"
	"vedaimport/internal/handler"
	"vedaimport/internal/middleware"
	"vedaimport/internal/repository/postgres"
	"vedaimport/internal/service/importer"
	"vedaimport/internal/service/importer/converter"
	"vedaimport/internal/sources"
	"vedaimport/internal/sources/bhaktivinoda"
	"vedaimport/internal/sources/kksongs"
	"vedaimport/internal/sources/wisdomlib"
	"vedaimport/internal/templates"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, closeLog := config.NewLogger(cfg)
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"persistence", cfg.PersistenceEnabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Templates: built-in presets plus user YAML files
	templateRegistry, err := templates.NewRegistry(logger)
	if err != nil {
		log.Fatalf("Failed to load built-in templates: %v", err)
	}
	if cfg.TemplatesDir != "" {
		if err := templateRegistry.LoadDir(cfg.TemplatesDir); err != nil {
			log.Fatalf("Failed to load templates from %s: %v", cfg.TemplatesDir, err)
		}
	}
	logger.Info("templates loaded", "count", len(templateRegistry.List()))

	// Site adapters share one throttled fetcher
	fetcher := fetch.NewHTTPClient(fetch.Config{
		Timeout:   cfg.FetchTimeout,
		Delay:     cfg.FetchDelay,
		UserAgent: cfg.FetchUserAgent,
	}, logger)
	sourceRegistry := sources.NewRegistry(
		bhaktivinoda.NewImporter(fetcher, logger),
		kksongs.NewImporter(fetcher, logger),
		wisdomlib.NewImporter(fetcher, logger),
	)

	// Persistence is optional
	var (
		repo      repositories.ScriptureRepository
		txManager repositories.TransactionManager
	)
	if cfg.PersistenceEnabled() {
		var pool *pgxpool.Pool
		pool, err = postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		logger.Info("database connected", "tables", tables.Books)

		repo = postgres.NewScriptureRepository(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		})
		txManager = postgres.NewTransactionManager(pool, logger)
	} else {
		logger.Warn("DATABASE_URL not set: persistence endpoint disabled")
	}

	importService := importer.NewImportService(importer.Config{
		Templates:   templateRegistry,
		Converters:  converter.NewRegistry(),
		Sources:     sourceRegistry,
		Repo:        repo,
		TxManager:   txManager,
		SiteTimeout: cfg.ImportTimeout,
		Logger:      logger,
	})
	importHandler := handler.NewImportHandler(importService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", importHandler.HealthCheck)
	mux.HandleFunc("GET /api/templates", importHandler.ListTemplates)

	// Import routes
	mux.HandleFunc("POST /api/import/preview", importHandler.Preview)
	mux.HandleFunc("POST /api/import/files", importHandler.Files)
	mux.HandleFunc("POST /api/import/site", importHandler.Site)
	mux.HandleFunc("POST /api/import/persist", importHandler.Persist)

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute, // Large zip uploads
		WriteTimeout:      cfg.ImportTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
