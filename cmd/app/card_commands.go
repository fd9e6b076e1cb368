package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardtoken/cmd/app/commands"
	"github.com/allisson/cardtoken/internal/app"
	"github.com/allisson/cardtoken/internal/config"
	"github.com/allisson/cardtoken/internal/credentials"
	paymentGateway "github.com/allisson/cardtoken/internal/payment/gateway"
	paymentService "github.com/allisson/cardtoken/internal/payment/service"
	paymentUseCase "github.com/allisson/cardtoken/internal/payment/usecase"
)

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "tokenize-card",
			Usage: "Validate a card and print its token without storing it",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Card number",
				},
				&cli.StringFlag{
					Name:     "expiration-date",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Expiration date in MM/YYYY or MM/YY format",
				},
				&cli.BoolFlag{
					Name:    "unique",
					Aliases: []string{"u"},
					Value:   false,
					Usage:   "Salt the token so repeated calls produce different tokens",
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

				useCase := paymentUseCase.NewPaymentUseCase(
					paymentGateway.NewLocalGateway(),
					paymentService.NewTokenDeriver(paymentService.NewSHA256HashService()),
					logger,
				)

				return commands.RunTokenizeCard(
					ctx,
					useCase,
					logger,
					os.Stdout,
					cmd.String("number"),
					cmd.String("expiration-date"),
					cmd.Bool("unique"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "encrypt-credential",
			Usage: "Encrypt a gateway credential with a KMS key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key-uri",
					Aliases: []string{"k"},
					Usage:   "KMS key URI (defaults to KMS_KEY_URI)",
				},
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Plaintext credential",
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

				keyURI := cmd.String("key-uri")
				if keyURI == "" {
					keyURI = cfg.KMSKeyURI
				}
				if keyURI == "" {
					return errors.New("key uri is required: set --key-uri or KMS_KEY_URI")
				}

				keeper, err := credentials.OpenKeeper(ctx, keyURI)
				if err != nil {
					return err
				}
				service := credentials.NewService(keeper)
				defer func() { _ = service.Close() }()

				return commands.RunEncryptCredential(
					ctx,
					service,
					container.Logger(),
					os.Stdout,
					cmd.String("value"),
					cmd.String("format"),
				)
			},
		},
	}
}
