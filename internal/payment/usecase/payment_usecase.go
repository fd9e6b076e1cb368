// Package usecase implements the payment business logic.
//
// Card validation and token derivation are local and side-effect free; the
// gateway is only contacted once a card passed every check.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/allisson/cardtoken/internal/errors"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
	paymentService "github.com/allisson/cardtoken/internal/payment/service"
	"github.com/allisson/cardtoken/internal/validation"
)

// paymentUseCase implements PaymentUseCase.
type paymentUseCase struct {
	gateway      Gateway
	tokenDeriver paymentService.TokenDeriver
	logger       *slog.Logger
	now          func() time.Time
}

// parseCard reads month and year from a MM/YYYY or MM/YY expiration and builds
// the card. Returns ErrInvalidExpirationFormat when neither pattern matches.
func parseCard(number, expirationDate string) (*paymentDomain.Card, error) {
	month, year, ok := validation.ParseExpiration(expirationDate)
	if !ok {
		return nil, paymentDomain.ErrInvalidExpirationFormat
	}
	return paymentDomain.NewCard(number, month, year)
}

// Tokenize validates the card and returns its token after storing it in the vault.
func (p *paymentUseCase) Tokenize(
	ctx context.Context,
	input *paymentDomain.TokenizeInput,
) (*paymentDomain.Token, error) {
	if strings.TrimSpace(input.Number) == "" || strings.TrimSpace(input.ExpirationDate) == "" {
		return nil, apperrors.Wrap(paymentDomain.ErrMissingField, "credit card information not complete")
	}

	card, err := parseCard(input.Number, input.ExpirationDate)
	if err != nil {
		return nil, err
	}

	p.logger.Info("tokenize request", slog.Any("card", card.Number))

	if err := card.Validate(p.now()); err != nil {
		p.logger.Info("tokenize rejected",
			slog.Any("card", card.Number),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	tokenValue, err := p.tokenDeriver.Derive(card.Number.Digits(), input.Unique)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to derive token")
	}

	customer, err := p.gateway.CreateCustomer(ctx, card, tokenValue)
	if err != nil {
		return nil, err
	}

	p.logger.Info("token created",
		slog.Any("card", card.Number),
		slog.String("customer_id", customer.ID.String()),
		slog.Bool("unique", input.Unique),
	)

	return &paymentDomain.Token{
		Value:     tokenValue,
		Unique:    input.Unique,
		CreatedAt: customer.CreatedAt,
	}, nil
}

// Authorize submits a sale for a previously issued token.
func (p *paymentUseCase) Authorize(
	ctx context.Context,
	input *paymentDomain.AuthorizeInput,
) (*paymentDomain.Transaction, error) {
	if strings.TrimSpace(input.Token) == "" || input.Amount == "" {
		return nil, apperrors.Wrap(paymentDomain.ErrMissingField, "incomplete transaction information")
	}

	if !validation.ValidateAmount(input.Amount) {
		return nil, paymentDomain.ErrInvalidAmountFormat
	}

	transaction, err := p.gateway.Sale(ctx, &paymentDomain.SaleRequest{
		Token:  input.Token,
		Amount: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("transaction authorized", slog.String("transaction_id", transaction.ID.String()))

	return transaction, nil
}

// NewPaymentUseCase creates a new PaymentUseCase with injected dependencies.
func NewPaymentUseCase(
	gateway Gateway,
	tokenDeriver paymentService.TokenDeriver,
	logger *slog.Logger,
) PaymentUseCase {
	return NewPaymentUseCaseWithClock(gateway, tokenDeriver, logger, time.Now)
}

// NewPaymentUseCaseWithClock is NewPaymentUseCase with an explicit clock used for expiry checks.
func NewPaymentUseCaseWithClock(
	gateway Gateway,
	tokenDeriver paymentService.TokenDeriver,
	logger *slog.Logger,
	now func() time.Time,
) PaymentUseCase {
	return &paymentUseCase{
		gateway:      gateway,
		tokenDeriver: tokenDeriver,
		logger:       logger,
		now:          now,
	}
}
