package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_IsValidated(t *testing.T) {
	assert.True(t, (&Transaction{Status: TransactionStatusProcessed}).IsValidated())
	assert.False(t, (&Transaction{Status: TransactionStatusAuthorized}).IsValidated())
}

func TestNewCustomer(t *testing.T) {
	card, err := NewCard("4111111111111111", 9, 2031)
	require.NoError(t, err)

	customer := NewCustomer(card, "abc123")

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "abc123", customer.Token)
	assert.Equal(t, "4111", customer.CardPrefix)
	assert.Equal(t, "09/2031", customer.ExpirationDate)
	assert.False(t, customer.CreatedAt.IsZero())
}
