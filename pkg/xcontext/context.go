package xcontext

import (
	"context"

	"github.com/questx-lab/social/config"
	"github.com/questx-lab/social/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey      struct{}
	loggerKey  struct{}
	configsKey struct{}
)

var silentLogger = logger.NewLogger(logger.SILENCE)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the database session bound to ctx. It panics if no database was
// attached with WithDB.
func DB(ctx context.Context) *gorm.DB {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("xcontext: no database in context")
	}

	return db.WithContext(ctx)
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger of ctx, or a logger which drops everything.
func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return silentLogger
	}

	return l
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Default()
	}

	return cfg
}
