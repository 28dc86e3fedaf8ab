package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"vedaimport/internal/config"
	"vedaimport/internal/repository/postgres"
	"vedaimport/internal/seed"
	"vedaimport/internal/service/importer"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	slug := flag.String("slug", "", "Book slug (defaults to the file's book_code)")
	canto := flag.Int("canto", 0, "Canto number for every chapter (0 = none)")
	schemaOnly := flag.Bool("schema-only", false, "Only create the tables, don't load a book")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: seed [-slug s] [-canto n] [-schema-only] <book-parsed.json>")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()
	if !cfg.PersistenceEnabled() {
		log.Fatalf("DATABASE_URL is not set")
	}
	if !*schemaOnly && flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger, closeLog := config.NewLogger(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	logger.Info("schema ready", "environment", cfg.Environment, "prefix", cfg.TablePrefix)
	if *schemaOnly {
		return
	}

	importService := importer.NewImportService(importer.Config{
		Repo: postgres.NewScriptureRepository(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		}),
		TxManager: postgres.NewTransactionManager(pool, logger),
		Logger:    logger,
	})

	result, err := seed.NewBookSeeder(importService, logger).SeedFile(ctx, flag.Arg(0), seed.Options{
		Slug:  *slug,
		Canto: *canto,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	fmt.Printf("%s: %d chapters, %d verses\n", result.BookID, result.Chapters, result.Verses)
}
