// Package config manages environment variables.
//
// It reads variables from the environment (optionally seeded from a `.env`
// file), loads them into structured Go types, validates that required
// values are present so the app fails fast on bad config, and applies
// defaults for the optional blocks.
//
// Keys use the CATALOG_ prefix and a double underscore for nesting:
//
//	CATALOG_SERVER__PORT            -> server.port          -> Config.Server.Port
//	CATALOG_DATABASE__HOST          -> database.host        -> Config.Database.Host
//	CATALOG_AUTH__SECRET_KEY        -> auth.secret_key      -> Config.Auth.SecretKey
//
// Blocks that gate request-time behavior (auth secret, storage credentials,
// database settings) are deliberately NOT required at load time: the
// process must be able to boot without them and report the missing piece as
// a 500 on the first request that needs it. Only the primary/server blocks
// are boot-critical.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before any env vars are read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"required"` tags are enforced by go-playground/validator.
// Observability is a pointer because it is optional; defaults are injected
// at load time when absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Storage       StorageConfig        `koanf:"storage"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are ints interpreted as seconds when the http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// No required tags: the connection manager validates these lazily and
// reports missing settings as a server-misconfiguration error on first use.
type DatabaseConfig struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name"`
	SSLMode         string `koanf:"ssl_mode"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
//
// Redis is optional: without it the login rate limiter fails open and
// asset cleanup runs inline instead of through the background queue.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
}

// AuthConfig stores authentication settings.
//
// SecretKey signs admin tokens (HS256). An empty secret does not block
// startup; protected routes answer 500 until it is configured.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// StorageConfig holds object-store (Cloudinary) credentials and upload limits.
type StorageConfig struct {
	CloudName string `koanf:"cloud_name"`
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`

	// ProductFolder and HeroFolder are the logical folders uploads land in.
	ProductFolder string `koanf:"product_folder"`
	HeroFolder    string `koanf:"hero_folder"`

	// MaxFileSize is the per-file limit in bytes; MaxFiles bounds one batch.
	MaxFileSize int64 `koanf:"max_file_size"`
	MaxFiles    int   `koanf:"max_files"`
}

// Configured reports whether all three Cloudinary credentials are present.
func (s StorageConfig) Configured() bool {
	return s.CloudName != "" && s.APIKey != "" && s.APISecret != ""
}

// Defaults for the optional blocks, mirroring the original deployment.
const (
	DefaultTokenTTL      = 7 * 24 * time.Hour
	DefaultMaxFileSize   = 50 << 20 // 50MB per file
	DefaultMaxFiles      = 10
	DefaultProductFolder = "sarhad-products"
	DefaultHeroFolder    = "sarhad-hero"
)

// Load loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix CATALOG_, "__" mapping to koanf nesting
//   - Unmarshals into Config
//   - Validates the boot-critical blocks
//   - Applies defaults for auth TTL, storage limits/folders, observability
//
// Load logs fatally on errors: a process with broken boot config has
// nothing useful to do.
func Load() (*Config, error) {
	// Human-friendly console logger for the pre-logger bootstrap phase.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// "." is the key-path delimiter koanf uses for nesting, e.g.
	// "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Env var names map to koanf keys by trimming the prefix, lowercasing,
	// and turning "__" into the nesting delimiter. Single underscores stay
	// inside a key, so CATALOG_SERVER__READ_TIMEOUT -> server.read_timeout.
	err := k.Load(env.Provider("CATALOG_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CATALOG_")), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	// "" means unmarshal everything from the root.
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	applyDefaults(mainConfig)

	// Force service name and environment so telemetry naming stays
	// consistent regardless of what the operator set.
	mainConfig.Observability.ServiceName = "catalog-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills in the optional blocks that were not provided.
func applyDefaults(cfg *Config) {
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = DefaultTokenTTL
	}
	if cfg.Storage.MaxFileSize == 0 {
		cfg.Storage.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Storage.MaxFiles == 0 {
		cfg.Storage.MaxFiles = DefaultMaxFiles
	}
	if cfg.Storage.ProductFolder == "" {
		cfg.Storage.ProductFolder = DefaultProductFolder
	}
	if cfg.Storage.HeroFolder == "" {
		cfg.Storage.HeroFolder = DefaultHeroFolder
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}
}
