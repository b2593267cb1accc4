// Package config loads praxis settings from defaults, an optional .env file,
// PRAXIS_* environment variables and an optional YAML file named by
// PRAXIS_CONFIG, in increasing order of precedence for the last two.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "PRAXIS"
	ConfigFileEnv = "PRAXIS_CONFIG"
)

type Config struct {
	DBPath    string `mapstructure:"db_path" validate:"required"`
	LogFile   string `mapstructure:"log_file"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ExportDir string `mapstructure:"export_dir" validate:"required"`
	Currency  string `mapstructure:"currency" validate:"iso4217"`
}

// DefaultConfig keeps the database under ~/.praxis.
func DefaultConfig() Config {
	dir := ".praxis"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".praxis")
	}
	return Config{
		DBPath:    filepath.Join(dir, "praxis.db"),
		LogLevel:  "info",
		ExportDir: ".",
		Currency:  "EUR",
	}
}

// Load reads ./.env when present, then the environment and config file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Getenv(ConfigFileEnv))
}

func load(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("currency", def.Currency)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize(def)

	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize(def Config) {
	c.DBPath = expandHome(domain.FirstNonBlank(c.DBPath, def.DBPath))
	c.LogFile = expandHome(strings.TrimSpace(c.LogFile))
	c.LogLevel = strings.ToLower(domain.FirstNonBlank(c.LogLevel, def.LogLevel))
	c.ExportDir = expandHome(domain.FirstNonBlank(c.ExportDir, def.ExportDir))
	c.Currency = strings.ToUpper(domain.FirstNonBlank(c.Currency, def.Currency))
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
