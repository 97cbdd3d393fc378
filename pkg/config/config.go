package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string
	StaticDir string

	Store        StoreConfig
	Cache        CacheConfig
	Availability AvailabilityConfig
	Exports      ExportsConfig
	CORS         CORSConfig
	Log          LogConfig
}

// StoreConfig describes the flat-file schedule document store.
type StoreConfig struct {
	DataDir         string
	DefaultFacility string
	BackupKeep      int
}

// CacheConfig tunes the in-process document cache.
type CacheConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

// AvailabilityConfig governs the upcoming-slot lookahead.
type AvailabilityConfig struct {
	LookaheadDays int
}

// ExportsConfig toggles schedule export endpoints.
type ExportsConfig struct {
	Enabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.StaticDir = v.GetString("STATIC_DIR")

	cfg.Store = StoreConfig{
		DataDir:         v.GetString("DATA_DIR"),
		DefaultFacility: v.GetString("DEFAULT_FACILITY"),
		BackupKeep:      v.GetInt("BACKUP_KEEP"),
	}

	cfg.Cache = CacheConfig{
		TTL:             parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
		CleanupInterval: parseDuration(v.GetString("CACHE_CLEANUP_INTERVAL"), 10*time.Minute),
	}

	cfg.Availability = AvailabilityConfig{
		LookaheadDays: v.GetInt("AVAILABILITY_LOOKAHEAD_DAYS"),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3001)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("STATIC_DIR", "./web")

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DEFAULT_FACILITY", "epic")
	v.SetDefault("BACKUP_KEEP", 5)

	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("CACHE_CLEANUP_INTERVAL", "10m")

	v.SetDefault("AVAILABILITY_LOOKAHEAD_DAYS", 7)
	v.SetDefault("ENABLE_EXPORTS", true)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
