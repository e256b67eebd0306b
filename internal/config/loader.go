package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "LEARNERS"

var validate = validator.New()

// Load reads .env, config.yaml and the environment into a validated Config.
func Load() (*Config, error) {
	loadEnvFile(".env")

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile(".env")

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return decode(v)
}

// newViper returns an instance with defaults and env bindings applied.
// A fresh instance per load keeps tests independent of global state.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	return v
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.base_url", d.Server.BaseURL)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("docstore.backend", d.Docstore.Backend)
	v.SetDefault("docstore.path", d.Docstore.Path)
	v.SetDefault("docstore.catalog_file", d.Docstore.CatalogFile)
	v.SetDefault("teaching.strict", d.Teaching.Strict)
	v.SetDefault("teaching.code_lines", d.Teaching.CodeLines)
	v.SetDefault("teaching.example_lines", d.Teaching.ExampleLines)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.insecure", d.Tracing.Insecure)
	v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills values that an explicit empty setting would zero.
func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = d.Log.Format
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Docstore.Backend == "" {
		cfg.Docstore.Backend = d.Docstore.Backend
	}
	if cfg.Teaching.CodeLines == 0 {
		cfg.Teaching.CodeLines = d.Teaching.CodeLines
	}
	if cfg.Teaching.ExampleLines == 0 {
		cfg.Teaching.ExampleLines = d.Teaching.ExampleLines
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = d.Metrics.Path
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = d.Tracing.ServiceName
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = d.CORS.AllowedOrigins
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
}

// loadEnvFile loads a dotenv file when present. Variables already set in
// the environment win.
func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
