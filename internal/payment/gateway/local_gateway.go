package gateway

import (
	"context"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// LocalGateway accepts every validated card without storing anything.
// It backs offline tokenization where no vault is reachable.
type LocalGateway struct{}

// CreateCustomer returns a customer for the token without persisting it.
func (g *LocalGateway) CreateCustomer(
	ctx context.Context,
	card *paymentDomain.Card,
	token string,
) (*paymentDomain.Customer, error) {
	return paymentDomain.NewCustomer(card, token), nil
}

// Sale always fails since no token is ever vaulted.
func (g *LocalGateway) Sale(
	ctx context.Context,
	req *paymentDomain.SaleRequest,
) (*paymentDomain.Transaction, error) {
	return nil, paymentDomain.ErrTokenNotFound
}

// NewLocalGateway creates a LocalGateway.
func NewLocalGateway() *LocalGateway {
	return &LocalGateway{}
}
