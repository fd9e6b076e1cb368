// Package mocks provides mock implementations of the payment use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// MockPaymentUseCase is a mock implementation of PaymentUseCase for testing.
type MockPaymentUseCase struct {
	mock.Mock
}

// NewMockPaymentUseCase creates a MockPaymentUseCase that asserts its expectations on cleanup.
func NewMockPaymentUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentUseCase {
	m := &MockPaymentUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Tokenize mocks the Tokenize method of PaymentUseCase.
func (m *MockPaymentUseCase) Tokenize(
	ctx context.Context,
	input *paymentDomain.TokenizeInput,
) (*paymentDomain.Token, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentDomain.Token), args.Error(1)
}

// Authorize mocks the Authorize method of PaymentUseCase.
func (m *MockPaymentUseCase) Authorize(
	ctx context.Context,
	input *paymentDomain.AuthorizeInput,
) (*paymentDomain.Transaction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentDomain.Transaction), args.Error(1)
}
