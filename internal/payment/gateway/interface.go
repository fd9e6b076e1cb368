package gateway

import (
	"context"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// CustomerRepository persists vault entries.
type CustomerRepository interface {
	Create(ctx context.Context, customer *paymentDomain.Customer) error
	GetByToken(ctx context.Context, token string) (*paymentDomain.Customer, error)
}

// TransactionRepository persists sale descriptors.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *paymentDomain.Transaction) error
}
