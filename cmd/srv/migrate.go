package main

import (
	"errors"

	"github.com/questx-lab/social/migration"
	"github.com/questx-lab/social/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if cctx.Bool("auto") {
		if cctx.Bool("down") {
			return errors.New("flag down cannot be used with auto")
		}

		if err := migration.AutoMigrate(s.ctx); err != nil {
			return err
		}

		xcontext.Logger(s.ctx).Infof("Auto migrated all tables")
		return nil
	}

	if cctx.Bool("down") {
		if err := migration.Rollback(s.ctx); err != nil {
			return err
		}
	} else {
		if err := migration.Migrate(s.ctx); err != nil {
			return err
		}
	}

	version, dirty, err := migration.Version(s.ctx)
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Database is at version %d (dirty=%t)", version, dirty)
	return nil
}
