package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardtoken/cmd/app/commands"
	"github.com/allisson/cardtoken/internal/app"
	"github.com/allisson/cardtoken/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the API server and, when enabled, the metrics server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Apply database migrations",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "steps",
					Aliases: []string{"s"},
					Value:   0,
					Usage:   "Number of migrations to apply, negative to roll back; 0 applies all pending",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(
					container.Logger(),
					cfg.DBDriver,
					cfg.DBConnectionString,
					int(cmd.Int("steps")),
				)
			},
		},
		{
			Name:  "migrate-version",
			Usage: "Print the applied database schema version",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrationVersion(
					container.Logger(),
					os.Stdout,
					cfg.DBDriver,
					cfg.DBConnectionString,
					cmd.String("format"),
				)
			},
		},
	}
}
