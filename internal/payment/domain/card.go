package domain

import (
	"time"
)

// Card is a card number with its expiration. Built per request, never persisted.
type Card struct {
	Number         CardNumber
	ExpirationDate ExpirationDate
}

// NewCard normalizes number and builds the expiration date. Returns
// ErrInvalidDate when month/year are out of range.
func NewCard(number string, month, year int) (*Card, error) {
	expirationDate, err := NewExpirationDate(month, year)
	if err != nil {
		return nil, err
	}

	return &Card{
		Number:         NewCardNumber(number),
		ExpirationDate: expirationDate,
	}, nil
}

// IsExpired reports whether the card expired as of now.
func (c *Card) IsExpired(now time.Time) bool {
	return c.ExpirationDate.IsExpired(now)
}

// IsValid reports whether the card is not expired and passes the checksum.
func (c *Card) IsValid(now time.Time) bool {
	return !c.IsExpired(now) && c.Number.IsChecksumValid()
}

// Validate is IsValid with the failing reason attached. Both reasons wrap
// ErrInvalidCard; the distinction is for internal logging only.
func (c *Card) Validate(now time.Time) error {
	if c.IsExpired(now) {
		return ErrCardExpired
	}
	if !c.Number.IsChecksumValid() {
		return ErrCardChecksum
	}
	return nil
}
