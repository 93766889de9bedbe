package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"medi-geo/internal/coordparse"
	"medi-geo/internal/types"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Parser   ParserConfig
	Location LocationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ParserConfig holds coordinate parser configuration
type ParserConfig struct {
	DefaultEllipsoid      string // ellipsoid applied to responses when none is requested, empty for none
	WideCardinalLongitude bool   // accept three digit longitudes with cardinal letters
}

// LocationConfig selects the metadata looked up for parsed coordinates
type LocationConfig struct {
	Timezone       bool
	ReverseGeocode bool
	NominatimURL   string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A .env file is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.medi-geo")

	setDefaults(v)

	// Read from environment variables, e.g. MEDI_GEO_SERVER_PORT
	v.SetEnvPrefix("MEDI_GEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("parser.defaultEllipsoid", "")
	v.SetDefault("parser.wideCardinalLongitude", false)
	v.SetDefault("location.timezone", true)
	v.SetDefault("location.reverseGeocode", false)
	v.SetDefault("location.nominatimURL", "https://nominatim.openstreetmap.org/reverse")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that defaults cannot guarantee
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if _, err := c.DefaultEllipsoid(); err != nil {
		return fmt.Errorf("invalid parser.defaultEllipsoid: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// DefaultEllipsoid returns the configured default ellipsoid, or nil when none is set
func (c *Config) DefaultEllipsoid() (*types.Ellipsoid, error) {
	if strings.TrimSpace(c.Parser.DefaultEllipsoid) == "" {
		return nil, nil
	}
	return types.LookupEllipsoid(c.Parser.DefaultEllipsoid)
}

// NewParser creates a coordinate parser with the configured options
func (c *Config) NewParser() *coordparse.Parser {
	var opts []coordparse.Option
	if c.Parser.WideCardinalLongitude {
		opts = append(opts, coordparse.WithWideCardinalLongitude())
	}
	return coordparse.NewParser(opts...)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
