package domain

import (
	"github.com/allisson/cardtoken/internal/errors"
)

var (
	// ErrMissingField indicates a required input field is absent.
	ErrMissingField = errors.Wrap(errors.ErrInvalidInput, "missing required field")

	// ErrInvalidExpirationFormat indicates the expiration string matches neither MM/YYYY nor MM/YY.
	ErrInvalidExpirationFormat = errors.Wrap(errors.ErrInvalidInput, "invalid expiration date format")

	// ErrInvalidDate indicates the month or year is outside the calendar range.
	ErrInvalidDate = errors.Wrap(errors.ErrInvalidInput, "invalid expiration date")

	// ErrInvalidCard indicates the card is expired or fails the checksum.
	// Callers outside the service must not be told which one.
	ErrInvalidCard = errors.Wrap(errors.ErrInvalidInput, "invalid credit card")

	// ErrCardExpired is the internal reason for an expired card. Wraps ErrInvalidCard.
	ErrCardExpired = errors.Wrap(ErrInvalidCard, "card expired")

	// ErrCardChecksum is the internal reason for a card failing the Luhn check. Wraps ErrInvalidCard.
	ErrCardChecksum = errors.Wrap(ErrInvalidCard, "card checksum failed")

	// ErrInvalidAmountFormat indicates the amount is not a plain decimal number.
	ErrInvalidAmountFormat = errors.Wrap(errors.ErrInvalidInput, "invalid amount format")

	// ErrTokenNotFound indicates the token is not present in the vault.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrCustomerAlreadyExists indicates a vault entry with the same token already exists.
	ErrCustomerAlreadyExists = errors.Wrap(errors.ErrConflict, "customer already exists")

	// ErrInvalidCredentials indicates the gateway credentials are incomplete.
	ErrInvalidCredentials = errors.New("invalid gateway credentials")
)
