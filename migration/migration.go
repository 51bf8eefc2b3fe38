package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/questx-lab/social/config"
	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/logger"
	"github.com/questx-lab/social/pkg/xcontext"
)

//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var sqlFS embed.FS

// AutoMigrate creates or updates every table from the entity definitions.
// When this migrator is called, no need to run the versioned migrations.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(entity.All()...)
}

// Migrate applies all pending versioned migrations of the configured driver.
func Migrate(ctx context.Context) error {
	m, err := newMigrate(ctx)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Rollback reverts all versioned migrations of the configured driver.
func Rollback(ctx context.Context) error {
	m, err := newMigrate(ctx)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Version returns the current versioned migration of the database. It
// returns 0 if no migration was applied.
func Version(ctx context.Context) (uint, bool, error) {
	m, err := newMigrate(ctx)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

// The returned instance is never closed: closing it also closes the *sql.DB
// shared with gorm.
func newMigrate(ctx context.Context) (*migrate.Migrate, error) {
	driverName := xcontext.Configs(ctx).Database.Driver

	db, err := xcontext.DB(ctx).DB()
	if err != nil {
		return nil, err
	}

	driver, err := newDatabaseDriver(driverName, db)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(sqlFS, driverName)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s migrations: %w", driverName, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return nil, err
	}

	m.Log = &migrateLogger{logger: xcontext.Logger(ctx)}
	return m, nil
}

func newDatabaseDriver(driverName string, db *sql.DB) (database.Driver, error) {
	switch driverName {
	case config.DriverMySQL:
		return migratemysql.WithInstance(db, &migratemysql.Config{})
	case config.DriverPostgres:
		return migratepostgres.WithInstance(db, &migratepostgres.Config{})
	case config.DriverSQLite:
		return migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}

	return nil, fmt.Errorf("unsupported database driver %q", driverName)
}

type migrateLogger struct {
	logger logger.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Infof(format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
