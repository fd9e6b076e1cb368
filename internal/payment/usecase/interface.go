// Package usecase defines interfaces and implementations for payment use cases.
// Tokenize validates raw card data and vaults the derived token; Authorize
// submits a sale against a vaulted token.
package usecase

import (
	"context"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// Gateway is the external payment gateway holding the token vault.
type Gateway interface {
	// CreateCustomer stores the token for a validated card in the vault.
	CreateCustomer(ctx context.Context, card *paymentDomain.Card, token string) (*paymentDomain.Customer, error)

	// Sale charges amount against a vaulted token.
	// Returns ErrTokenNotFound when the token is not in the vault.
	Sale(ctx context.Context, req *paymentDomain.SaleRequest) (*paymentDomain.Transaction, error)
}

// PaymentUseCase defines the tokenize and authorize operations.
type PaymentUseCase interface {
	// Tokenize validates the card and returns its token after storing it in the vault.
	// Returns ErrMissingField, ErrInvalidExpirationFormat, ErrInvalidDate or ErrInvalidCard
	// on validation failures.
	Tokenize(ctx context.Context, input *paymentDomain.TokenizeInput) (*paymentDomain.Token, error)

	// Authorize submits a sale for a previously issued token.
	// Returns ErrMissingField or ErrInvalidAmountFormat on validation failures.
	Authorize(ctx context.Context, input *paymentDomain.AuthorizeInput) (*paymentDomain.Transaction, error)
}
