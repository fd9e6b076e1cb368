package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a vault entry binding a token to the card it was derived from.
// Only the card prefix and expiration are kept; the full number never is.
type Customer struct {
	ID             uuid.UUID
	Token          string
	CardPrefix     string
	ExpirationDate string
	CreatedAt      time.Time
}

// NewCustomer builds the vault entry for a validated card and its token.
func NewCustomer(card *Card, token string) *Customer {
	return &Customer{
		ID:             uuid.Must(uuid.NewV7()),
		Token:          token,
		CardPrefix:     card.Number.Prefix(),
		ExpirationDate: card.ExpirationDate.MMYYYY(),
		CreatedAt:      time.Now().UTC(),
	}
}
