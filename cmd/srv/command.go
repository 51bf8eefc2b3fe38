package main

import (
	"strings"

	"github.com/urfave/cli/v2"
)

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "social"
	app.Usage = "Manage the social database"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.toml",
			Usage:   "path of the toml config file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:    s.startMigrate,
			Before:    s.setup,
			After:     s.teardown,
			Name:      "migrate",
			Usage:     "Create or update the database schema",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "auto",
					Usage: "create tables from the entity definitions instead of the sql migrations",
				},
				&cli.BoolFlag{
					Name:  "down",
					Usage: "revert all sql migrations",
				},
			},
			Category:    "Database",
			Description: `Used to run the versioned sql migrations of the configured driver.`,
		},
		{
			Action:    s.startExport,
			Before:    s.setup,
			After:     s.teardown,
			Name:      "export",
			Usage:     "Print the records of a table as json lines",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "table",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "one of " + strings.Join(exportTables(), ", "),
				},
			},
			Category:    "Database",
			Description: `Used to dump the serialized form of every record of a table.`,
		},
	}

	s.app = app
}
