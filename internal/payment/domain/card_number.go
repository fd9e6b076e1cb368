package domain

import (
	"log/slog"
	"strings"
)

// CardNumber holds the digits of a primary account number. Anything that is
// not an ASCII digit is dropped at construction.
type CardNumber struct {
	digits string
}

// NewCardNumber strips spaces, dashes and every other non-digit from raw.
func NewCardNumber(raw string) CardNumber {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return CardNumber{digits: b.String()}
}

// Digits returns the normalized digit string.
func (n CardNumber) Digits() string {
	return n.digits
}

// IsEmpty reports whether no digits were left after normalization.
func (n CardNumber) IsEmpty() bool {
	return n.digits == ""
}

// IsChecksumValid runs the Luhn check over the digits.
func (n CardNumber) IsChecksumValid() bool {
	return Luhn(n.digits)
}

// Prefix returns up to the first CardPrefixLength digits.
func (n CardNumber) Prefix() string {
	if len(n.digits) <= CardPrefixLength {
		return n.digits
	}
	return n.digits[:CardPrefixLength]
}

// String renders the number masked so it never ends up in logs in full.
func (n CardNumber) String() string {
	if len(n.digits) <= CardPrefixLength {
		return strings.Repeat("*", len(n.digits))
	}
	return n.Prefix() + strings.Repeat("*", len(n.digits)-CardPrefixLength)
}

// LogValue implements slog.LogValuer, exposing only the prefix.
func (n CardNumber) LogValue() slog.Value {
	return slog.StringValue(n.Prefix())
}
