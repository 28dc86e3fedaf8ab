package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"vedaimport/internal/config"
	"vedaimport/internal/legacy"

	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: parse-bbt-prose <book>")
	fmt.Fprintf(os.Stderr, "books: %s\n", strings.Join(legacy.BookCodes(), ", "))
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}
	code := os.Args[1]
	if _, err := legacy.LookupBook(code); err != nil {
		fmt.Fprintf(os.Stderr, "unknown book %q\n", code)
		usage()
	}

	cfg := config.Load()
	logger, closeLog := config.NewLogger(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := legacy.NewRunner(cfg.BBTDocsDir, cfg.BBTOutputDir, logger)
	result, err := runner.Run(ctx, code)
	if err != nil {
		log.Fatalf("parse %s: %v", code, err)
	}

	fmt.Printf("%s: %d chapters -> %s\n", result.Book.Code, len(result.Book.Chapters), result.OutputPath)
}
