package testutil

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/questx-lab/social/config"
	"github.com/questx-lab/social/migration"
	"github.com/questx-lab/social/pkg/database"
	"github.com/questx-lab/social/pkg/logger"
	"github.com/questx-lab/social/pkg/xcontext"
)

// NewMockContext returns a context holding an empty in-memory sqlite
// database. Every call gets its own database.
func NewMockContext() context.Context {
	cfg := config.Configs{
		Env:      "test",
		LogLevel: "silence",
		Database: config.DatabaseConfigs{
			Driver: config.DriverSQLite,
			File:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))

	db, err := database.NewDB(ctx)
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}

	// The in-memory database lives as long as one connection is open.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return xcontext.WithDB(ctx, db)
}

// MockContext returns a context holding an in-memory sqlite database with
// every table created.
func MockContext() context.Context {
	ctx := NewMockContext()
	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}
