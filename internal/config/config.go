package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"

	pkgconfig "github.com/domainops/porkbun-adapter/pkg/config"
)

// DefaultBaseURL is the production Porkbun JSON API v3 endpoint.
const DefaultBaseURL = "https://api.porkbun.com/api/json/v3"

// Config holds the core runtime configuration for a service instance.
// It supports environment-based initialization, with sensible defaults.
// Loaded once at startup; never mutated afterwards.
type Config struct {
	ServiceName string // e.g. "porkbun-adapter"
	Env         string // e.g. "dev", "uat", "prod"
	LogLevel    string // "debug", "info", etc.

	BaseURL      string        // Porkbun API base URL, no trailing slash
	APIKey       string        // from PORKBUN_API_KEY; may be empty when SecretName is set
	SecretAPIKey string        // from PORKBUN_SECRET_API_KEY
	Timeout      time.Duration // outbound request timeout, clamped to [1s, 300s]

	Port        int    // REST front-end port
	MetricsAddr string // prometheus /metrics listen address
	MCPMode     string // "http", "stdio", or "off"
	MCPAddr     string // listen address for MCP streamable HTTP transport

	AWSRegion  string // for AWS SDK client
	SecretName string // optional Secrets Manager secret holding the credential pair
}

// Load loads configuration from environment variables and .env file if present.
func Load() *Config {
	// load .env silently (no error if missing)
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName:  pkgconfig.GetEnv("SERVICE_NAME", "porkbun-adapter"),
		Env:          pkgconfig.GetEnv("ENV", "dev"),
		LogLevel:     pkgconfig.GetEnv("LOG_LEVEL", "info"),
		BaseURL:      strings.TrimRight(pkgconfig.GetEnv("PORKBUN_BASE_URL", DefaultBaseURL), "/"),
		APIKey:       pkgconfig.GetEnv("PORKBUN_API_KEY", ""),
		SecretAPIKey: pkgconfig.GetEnv("PORKBUN_SECRET_API_KEY", ""),
		Timeout:      time.Duration(pkgconfig.GetEnvIntBounded("PORKBUN_TIMEOUT", 30, 1, 300)) * time.Second,
		Port:         pkgconfig.GetEnvInt("PORT", 8000),
		MetricsAddr:  pkgconfig.GetEnv("METRICS_ADDR", ":9100"),
		MCPMode:      pkgconfig.GetEnv("MCP_TRANSPORT", "http"),
		MCPAddr:      pkgconfig.GetEnv("MCP_ADDR", "localhost:8081"),
		AWSRegion:    pkgconfig.GetEnv("AWS_REGION", "us-east-2"),
		SecretName:   pkgconfig.GetEnv("PORKBUN_SECRET_NAME", ""),
	}

	return cfg
}
