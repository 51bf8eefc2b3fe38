package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "not-exist.toml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("read file", func(t *testing.T) {
		path := writeConfig(t, `
env = "prod"
log_level = "warn"

[database]
driver = "mysql"
host = "db"
port = "3306"
database = "social"
user = "root"
password = "secret"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "prod", cfg.Env)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, DatabaseConfigs{
			Driver:   DriverMySQL,
			Host:     "db",
			Port:     "3306",
			Database: "social",
			User:     "root",
			Password: "secret",
			File:     "social.db",
		}, cfg.Database)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, `
[database]
driver = "mysql"
host = "db"
`)
		t.Setenv("DB_DRIVER", DriverPostgres)
		t.Setenv("DB_HOST", "pg")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, DriverPostgres, cfg.Database.Driver)
		require.Equal(t, "pg", cfg.Database.Host)
	})

	t.Run("invalid driver", func(t *testing.T) {
		path := writeConfig(t, `
[database]
driver = "oracle"
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := writeConfig(t, `env = `)
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestDatabaseConfigs_ConnectionString(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfigs
		want string
	}{
		{
			name: "mysql",
			cfg: DatabaseConfigs{
				Driver: DriverMySQL, Host: "localhost", Port: "3306",
				Database: "social", User: "root", Password: "pw",
			},
			want: "root:pw@tcp(localhost:3306)/social?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true&clientFoundRows=true",
		},
		{
			name: "postgres",
			cfg: DatabaseConfigs{
				Driver: DriverPostgres, Host: "localhost", Port: "5432",
				Database: "social", User: "postgres", Password: "pw",
			},
			want: "host=localhost port=5432 user=postgres password=pw dbname=social sslmode=disable",
		},
		{
			name: "sqlite file",
			cfg:  DatabaseConfigs{Driver: DriverSQLite, File: "social.db"},
			want: "social.db?_foreign_keys=1",
		},
		{
			name: "sqlite uri",
			cfg:  DatabaseConfigs{Driver: DriverSQLite, File: "file:abc?mode=memory&cache=shared"},
			want: "file:abc?mode=memory&cache=shared&_foreign_keys=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.cfg.ConnectionString())
		})
	}
}
