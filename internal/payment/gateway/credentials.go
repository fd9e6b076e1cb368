// Package gateway implements the vault gateway that stores card tokens and records sales.
package gateway

import (
	"log/slog"
	"strings"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// Credentials identifies the merchant against the vault.
type Credentials struct {
	MerchantID string
	PublicKey  string
	PrivateKey string
}

// Validate returns ErrInvalidCredentials when any field is blank.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.MerchantID) == "" ||
		strings.TrimSpace(c.PublicKey) == "" ||
		strings.TrimSpace(c.PrivateKey) == "" {
		return paymentDomain.ErrInvalidCredentials
	}
	return nil
}

// LogValue keeps the keys out of log output.
func (c Credentials) LogValue() slog.Value {
	return slog.StringValue(c.MerchantID)
}
