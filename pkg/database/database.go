package database

import (
	"context"
	"fmt"
	"time"

	"github.com/questx-lab/social/config"
	"github.com/questx-lab/social/pkg/logger"
	"github.com/questx-lab/social/pkg/xcontext"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the database described by the configs of ctx. SQL traces go to
// the logger of ctx.
func NewDB(ctx context.Context) (*gorm.DB, error) {
	cfg := xcontext.Configs(ctx)

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.Database.ConnectionString())

	case config.DriverPostgres:
		dialector = postgres.Open(cfg.Database.ConnectionString())

	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Database.ConnectionString())

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(xcontext.Logger(ctx), level),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open %s database: %w", cfg.Database.Driver, err)
	}

	return db, nil
}

type gormWriter struct {
	logger logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.logger.Infof(format, args...)
}

func newGormLogger(l logger.Logger, level int) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	switch level {
	case logger.DEBUG:
		gormLevel = gormlogger.Info
	case logger.ERROR:
		gormLevel = gormlogger.Error
	case logger.SILENCE:
		gormLevel = gormlogger.Silent
	}

	return gormlogger.New(gormWriter{logger: l}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
