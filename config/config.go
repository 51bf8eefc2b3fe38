package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Configs struct {
	Env      string          `toml:"env"`
	LogLevel string          `toml:"log_level"`
	Database DatabaseConfigs `toml:"database"`
}

type DatabaseConfigs struct {
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`

	// File is the sqlite database file or URI.
	File string `toml:"file"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
		)

	case DriverSQLite:
		sep := "?"
		if strings.Contains(d.File, "?") {
			sep = "&"
		}
		return d.File + sep + "_foreign_keys=1"

	default:
		// clientFoundRows makes RowsAffected count matched rows, as the other
		// drivers do, so an update to the current values is not a miss.
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true&clientFoundRows=true",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)
	}
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		Database: DatabaseConfigs{
			Driver: DriverSQLite,
			File:   "social.db",
		},
	}
}

// Load reads the configs from a TOML file at path. A missing file is not an
// error, the defaults are used instead. Environment variables override the
// database section in both cases.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	overrideFromEnv(&cfg)

	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return Configs{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func overrideFromEnv(cfg *Configs) {
	envs := map[string]*string{
		"APP_ENV":     &cfg.Env,
		"LOG_LEVEL":   &cfg.LogLevel,
		"DB_DRIVER":   &cfg.Database.Driver,
		"DB_HOST":     &cfg.Database.Host,
		"DB_PORT":     &cfg.Database.Port,
		"DB_NAME":     &cfg.Database.Database,
		"DB_USER":     &cfg.Database.User,
		"DB_PASSWORD": &cfg.Database.Password,
		"DB_FILE":     &cfg.Database.File,
	}

	for key, field := range envs {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}
}
