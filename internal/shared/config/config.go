package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultAnalyzerURL     = "http://localhost:5000/api/analyze"
	defaultAnalyzerTimeout = 120 * time.Second
	defaultMaxUploadBytes  = 16 << 20
	defaultSessionCookie   = "rf_session"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	AnalyzerURL     string
	AnalyzerTimeout time.Duration
	DatabaseURL     string
	MaxUploadBytes  int64
	SessionCookie   string
	SessionSecure   bool
}

// fileValues mirrors the optional YAML config file. Keys match the env names
// lowercased; environment variables always win over the file.
type fileValues struct {
	Port                   string `yaml:"port"`
	Env                    string `yaml:"env"`
	CORSAllowOrigins       string `yaml:"cors_allow_origins"`
	AnalyzerURL            string `yaml:"analyzer_url"`
	AnalyzerTimeoutSeconds int    `yaml:"analyzer_timeout_seconds"`
	DatabaseURL            string `yaml:"database_url"`
	MaxUploadBytes         int64  `yaml:"max_upload_bytes"`
	SessionCookie          string `yaml:"session_cookie"`
	SessionSecure          *bool  `yaml:"session_secure"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	file, err := readFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Printf("config file ignored: %v", err)
	}

	env := normalizeEnv(getEnv("ENV", file.Env, "dev"))
	dbURL := getEnv("DATABASE_URL", file.DatabaseURL, "")
	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	timeout := defaultAnalyzerTimeout
	if file.AnalyzerTimeoutSeconds > 0 {
		timeout = time.Duration(file.AnalyzerTimeoutSeconds) * time.Second
	}
	maxUpload := int64(defaultMaxUploadBytes)
	if file.MaxUploadBytes > 0 {
		maxUpload = file.MaxUploadBytes
	}
	secure := env == "production"
	if file.SessionSecure != nil {
		secure = *file.SessionSecure
	}

	return Config{
		Port:            getEnv("PORT", file.Port, "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", file.CORSAllowOrigins, "http://localhost:3000")),
		AnalyzerURL:     getEnv("ANALYZER_URL", file.AnalyzerURL, defaultAnalyzerURL),
		AnalyzerTimeout: parseSeconds(os.Getenv("ANALYZER_TIMEOUT_SECONDS"), timeout),
		DatabaseURL:     dbURL,
		MaxUploadBytes:  parseInt64(os.Getenv("MAX_UPLOAD_BYTES"), maxUpload),
		SessionCookie:   getEnv("SESSION_COOKIE", file.SessionCookie, defaultSessionCookie),
		SessionSecure:   parseBool(os.Getenv("SESSION_SECURE"), secure),
	}
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// godotenv.Load never overrides variables already set in the process.
		if err := godotenv.Load(path); err != nil {
			log.Printf("env file %s ignored: %v", path, err)
		}
	}
}

func readFile(path string) (fileValues, error) {
	var values fileValues
	if strings.TrimSpace(path) == "" {
		return values, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return values, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fileValues{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}

func getEnv(key, fileValue, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if fileValue != "" {
		return fileValue
	}
	return def
}

func parseSeconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}

func parseInt64(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return b
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
