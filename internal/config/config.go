package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string // Empty disables persistence
	CORSOrigins string
	TablePrefix string
	// Logging
	LogFormat   string // "json" or "text"
	LogDir      string // Empty disables the log file
	LogMaxFiles int
	// Site fetching
	FetchTimeout   time.Duration
	FetchDelay     time.Duration
	FetchUserAgent string
	ImportTimeout  time.Duration // Budget for one whole site import
	// Import templates
	TemplatesDir string
	// Legacy batch tool
	BBTDocsDir   string
	BBTOutputDir string
	// Debug flags
	Debug bool // Lowers the log level to debug
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:    getTablePrefix(env),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		LogDir:         getEnv("LOG_DIR", ""),
		LogMaxFiles:    getInt("LOG_MAX_FILES", 10),
		FetchTimeout:   getDuration("FETCH_TIMEOUT", 30*time.Second),
		FetchDelay:     getDuration("FETCH_DELAY", time.Second),
		FetchUserAgent: getEnv("FETCH_USER_AGENT", ""),
		ImportTimeout:  getDuration("IMPORT_TIMEOUT", 10*time.Minute),
		TemplatesDir:   getEnv("TEMPLATES_DIR", ""),
		BBTDocsDir:     getEnv("BBT_DOCS_DIR", "docs/bbt"),
		BBTOutputDir:   getEnv("BBT_OUTPUT_DIR", "src/data"),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// PersistenceEnabled reports whether a database is configured
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL != ""
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getDuration accepts Go durations ("30s") or plain seconds ("30")
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
