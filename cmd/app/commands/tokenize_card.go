package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
	paymentUseCase "github.com/allisson/cardtoken/internal/payment/usecase"
)

// RunTokenizeCard validates a card and prints the derived token.
// Validation failures are reported with the same generic reasons the API uses.
func RunTokenizeCard(
	ctx context.Context,
	useCase paymentUseCase.PaymentUseCase,
	logger *slog.Logger,
	writer io.Writer,
	number string,
	expirationDate string,
	unique bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	token, err := useCase.Tokenize(ctx, &paymentDomain.TokenizeInput{
		Number:         number,
		ExpirationDate: expirationDate,
		Unique:         unique,
	})
	if err != nil {
		return fmt.Errorf("failed to tokenize card: %w", err)
	}

	if format == formatJSON {
		if err := writeJSON(writer, map[string]any{
			"token":      token.Value,
			"unique":     token.Unique,
			"created_at": token.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Token: %s\n", token.Value)
	}

	logger.Info("card tokenized", slog.Bool("unique", unique))

	return nil
}
