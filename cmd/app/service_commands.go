package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pcoetsee/settings-service/cmd/app/commands"
	"github.com/pcoetsee/settings-service/internal/app"
	"github.com/pcoetsee/settings-service/internal/config"
)

func getServiceCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-service",
			Usage: "Register a new service account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Unique service name",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Service password (omit for interactive prompt)",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "read",
					Usage:   "Access role: 'read' or 'full'",
				},
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

				serviceUseCase, err := container.ServiceUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateService(
					ctx,
					serviceUseCase,
					container.Logger(),
					cmd.String("name"),
					cmd.String("password"),
					cmd.String("role"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "update-service",
			Usage: "Update an existing service account's role or password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Name of the service to update",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "New access role: 'read' or 'full' (omit to keep current)",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "New password (omit to keep current)",
				},
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

				serviceUseCase, err := container.ServiceUseCase()
				if err != nil {
					return err
				}

				return commands.RunUpdateService(
					ctx,
					serviceUseCase,
					container.Logger(),
					cmd.String("name"),
					cmd.String("role"),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
