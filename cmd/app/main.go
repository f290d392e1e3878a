// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fiscalhub/fiscalhub/cmd/app/commands"
	"github.com/fiscalhub/fiscalhub/internal/app"
	"github.com/fiscalhub/fiscalhub/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "fiscalhub",
		Usage:   "Authentication and organization management service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-user",
				Usage: "Create a user account (e.g., the first administrator)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "cpf",
						Required: true,
						Usage:    "User CPF, formatted or digits only",
					},
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Full name",
					},
					&cli.StringFlag{
						Name:    "email",
						Aliases: []string{"e"},
						Usage:   "Email address",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Password (minimum 8 characters)",
					},
					&cli.StringFlag{
						Name:    "role",
						Aliases: []string{"r"},
						Value:   "2",
						Usage:   "Role code: 1 for administrator, 2 for standard user",
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
					logger := container.Logger()
					defer func() {
						if err := container.Shutdown(context.Background()); err != nil {
							logger.Error("failed to shutdown container", slog.Any("error", err))
						}
					}()

					userUseCase, err := container.UserUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize user use case: %w", err)
					}

					return commands.RunCreateUser(
						ctx,
						userUseCase,
						logger,
						cmd.String("cpf"),
						cmd.String("name"),
						cmd.String("email"),
						cmd.String("password"),
						cmd.String("role"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
