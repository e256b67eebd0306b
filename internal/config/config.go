// Package config loads the server configuration.
//
// Values come from, in increasing precedence: built-in defaults, an
// optional config.yaml (searched in . and ./configs), a .env file and the
// process environment. Environment keys use the LEARNERS_ prefix with
// dots replaced by underscores (LEARNERS_LOG_LEVEL). PORT is honoured
// for server.port so the server runs unchanged on common PaaS hosts.
package config

import (
	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
	"github.com/zarndearc/learners-coder-mcp/internal/policy"
)

// Config is the main application configuration struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Docstore DocstoreConfig `mapstructure:"docstore"`
	Teaching TeachingConfig `mapstructure:"teaching"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
	// BaseURL is advertised in the SSE endpoint event. Empty means the
	// endpoint is sent as a relative path.
	BaseURL         string `mapstructure:"base_url" validate:"omitempty,url"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// DocstoreConfig selects the document store backend and an optional extra catalog.
type DocstoreConfig struct {
	Backend     string `mapstructure:"backend" validate:"oneof=memory sqlite"`
	Path        string `mapstructure:"path"`
	CatalogFile string `mapstructure:"catalog_file"`
}

// TeachingConfig controls the strict gate and snippet truncation limits.
type TeachingConfig struct {
	Strict       bool `mapstructure:"strict"`
	CodeLines    int  `mapstructure:"code_lines" validate:"min=1"`
	ExampleLines int  `mapstructure:"example_lines" validate:"min=1"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"startswith=/"`
}

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"min=0,max=1"`
	Insecure    bool    `mapstructure:"insecure"`
}

// CORSConfig lists the origins allowed by the CORS middleware.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
}

// Limits converts the teaching settings to truncation limits.
func (t TeachingConfig) Limits() policy.Limits {
	return policy.Limits{CodeLines: t.CodeLines, ExampleLines: t.ExampleLines}
}

// StoreConfig converts the docstore settings for docstore.Open.
func (d DocstoreConfig) StoreConfig() docstore.Config {
	return docstore.Config{Backend: d.Backend, Path: d.Path}
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	limits := policy.DefaultLimits()
	return &Config{
		Server: ServerConfig{Port: 3000, ShutdownTimeout: 10},
		Log:    LogConfig{Level: "info", Format: "json"},
		Docstore: DocstoreConfig{
			Backend: docstore.BackendMemory,
		},
		Teaching: TeachingConfig{
			CodeLines:    limits.CodeLines,
			ExampleLines: limits.ExampleLines,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			ServiceName: "learners-coder-mcp",
			SampleRate:  1.0,
			Insecure:    true,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
	}
}
