package main

import (
	"context"

	"github.com/questx-lab/social/config"
	"github.com/questx-lab/social/pkg/database"
	"github.com/questx-lab/social/pkg/logger"
	"github.com/questx-lab/social/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App
	ctx context.Context
}

// setup loads the configs, the logger and the database into the context of
// server. It runs before every command.
func (s *srv) setup(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx := xcontext.WithConfigs(cctx.Context, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(level))

	db, err := database.NewDB(ctx)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(ctx, db)
	xcontext.Logger(s.ctx).Debugf("Connected to %s database", cfg.Database.Driver)
	return nil
}

func (s *srv) teardown(cctx *cli.Context) error {
	if s.ctx == nil {
		return nil
	}

	if l, ok := xcontext.Logger(s.ctx).(interface{ Sync() error }); ok {
		// stdout cannot be synced on some platforms.
		_ = l.Sync()
	}

	sqlDB, err := xcontext.DB(s.ctx).DB()
	if err != nil {
		return err
	}
	s.ctx = nil

	return sqlDB.Close()
}
