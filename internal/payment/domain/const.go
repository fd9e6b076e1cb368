// Package domain defines the card validation and tokenization domain models.
// Covers card number checksums, expiration semantics, token bounds and the
// vault records kept by the gateway.
package domain

import (
	"time"
)

const (
	// MaxTokenLength is the largest token the vault accepts. Derived tokens are
	// truncated to this many hex characters.
	MaxTokenLength = 35

	// SaltSize is the number of random bytes mixed into unique tokens.
	SaltSize = 16

	// CardPrefixLength is the number of leading digits that may be surfaced in
	// logs and vault records.
	CardPrefixLength = 4

	// MaxYear is the largest year accepted for an expiration date.
	MaxYear = 9999

	// ReferenceOffset is the UTC offset used to evaluate expiry (UTC-11, the
	// last timezone to cross midnight).
	ReferenceOffset = -11 * time.Hour
)

// ReferenceLocation is the fixed zone expiration dates are anchored to.
var ReferenceLocation = time.FixedZone("UTC-11", int(ReferenceOffset.Seconds()))
