package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// MockGateway is a mock implementation of Gateway for testing.
type MockGateway struct {
	mock.Mock
}

// NewMockGateway creates a MockGateway that asserts its expectations on cleanup.
func NewMockGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGateway {
	m := &MockGateway{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreateCustomer mocks the CreateCustomer method of Gateway.
func (m *MockGateway) CreateCustomer(
	ctx context.Context,
	card *paymentDomain.Card,
	token string,
) (*paymentDomain.Customer, error) {
	args := m.Called(ctx, card, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentDomain.Customer), args.Error(1)
}

// Sale mocks the Sale method of Gateway.
func (m *MockGateway) Sale(
	ctx context.Context,
	req *paymentDomain.SaleRequest,
) (*paymentDomain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentDomain.Transaction), args.Error(1)
}
