package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultAvatarsSubDir = "avatars"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// database path
	DatabasePath string `env:"DATABASE_PATH" envDefault:"hrm.db"`
	DBLogLevel   string `env:"DB_LOG_LEVEL" envDefault:"warn"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// recorded as CreatedBy/UpdatedBy on person rows
	SystemActor string `env:"SYSTEM_ACTOR" envDefault:"system"`

	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" envDefault:"100"`

	JWTSecret          string `env:"JWT_SECRET"`
	JWTExpirationHours int    `env:"JWT_EXPIRATION_HOURS" envDefault:"24"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// an empty address disables the catalog cache
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	// an empty URL disables event publishing to NATS
	NATSURL           string `env:"NATS_URL"`
	NATSSubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"hr.events"`

	// media storage configuration
	MediaStoragePath string `env:"MEDIA_STORAGE_PATH" envDefault:"./media_storage"`
	AvatarsSubDir    string `env:"AVATARS_SUBDIR" envDefault:"avatars"`
	AvatarsPath      string `env:"-"` // full-calculated path for avatars
	AvatarSize       int    `env:"AVATAR_SIZE" envDefault:"256"`

	// worker settings
	EventQueueSize  int `env:"EVENT_QUEUE_SIZE" envDefault:"256"`
	NumEventWorkers int `env:"NUM_EVENT_WORKERS" envDefault:"2"`

	BootstrapAdminUser     string `env:"BOOTSTRAP_ADMIN_USER" envDefault:"admin"`
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// JWTExpiration is the lifetime of issued login tokens
func (c Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

// LoadEnv loads the env files that exist. Variables already set in the environment win.
func LoadEnv(files ...string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	absMediaStorage, err := filepath.Abs(cfg.MediaStoragePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for media storage '%s': %w", cfg.MediaStoragePath, err)
	}
	cfg.MediaStoragePath = absMediaStorage
	if strings.TrimSpace(cfg.AvatarsSubDir) == "" {
		cfg.AvatarsSubDir = DefaultAvatarsSubDir
	}
	cfg.AvatarsPath = filepath.Join(absMediaStorage, cfg.AvatarsSubDir)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.DefaultPageSize))
	}
	if c.MaxPageSize < c.DefaultPageSize {
		errs = append(errs, fmt.Errorf("MAX_PAGE_SIZE (%d) must not be below DEFAULT_PAGE_SIZE (%d)", c.MaxPageSize, c.DefaultPageSize))
	}
	if c.JWTExpirationHours <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRATION_HOURS must be positive, got %d", c.JWTExpirationHours))
	}
	if c.AvatarSize <= 0 {
		errs = append(errs, fmt.Errorf("AVATAR_SIZE must be positive, got %d", c.AvatarSize))
	}
	if c.EventQueueSize <= 0 || c.NumEventWorkers <= 0 {
		errs = append(errs, errors.New("EVENT_QUEUE_SIZE and NUM_EVENT_WORKERS must be positive"))
	}
	return errors.Join(errs...)
}
