package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	LogLevel    string
	Port        string
	DatabaseURL string
	GeoIPDBPath string

	PlatformSpecsPath string
	CustomSpecsPath   string
	SpecCacheTTL      time.Duration
	ExportStoragePath string

	CORSOrigins []string

	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	DemoAgentStub   bool
	AgentMaxRetries int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// DATABASE_URL is optional; without it production tickets are kept in memory.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GeoIPDBPath:       os.Getenv("GEOIP_DB_PATH"),
		PlatformSpecsPath: os.Getenv("PLATFORM_SPECS_PATH"),
		CustomSpecsPath:   getEnv("CUSTOM_SPECS_PATH", "data/custom_specs.json"),
		SpecCacheTTL:      time.Second * time.Duration(getEnvInt("SPEC_CACHE_TTL_SECONDS", 300)),
		ExportStoragePath: os.Getenv("EXPORT_STORAGE_PATH"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),
		GeminiModel:       getEnv("GEMINI_MODEL", "models/gemini-2.5-pro"),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		DemoAgentStub:     getEnvBool("DEMO_AGENT_STUB", false),
		AgentMaxRetries:   getEnvInt("AGENT_MAX_RETRIES", 2),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	if cfg.SpecCacheTTL <= 0 {
		return nil, fmt.Errorf("SPEC_CACHE_TTL_SECONDS must be positive")
	}
	if _, err := ParseLogLevel(cfg.LogLevel, cfg.AppEnv); err != nil {
		return nil, err
	}
	if cfg.AgentMaxRetries < 0 {
		return nil, fmt.Errorf("AGENT_MAX_RETRIES must not be negative")
	}

	return cfg, nil
}

// HasDatabase reports whether a PostgreSQL connection is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
