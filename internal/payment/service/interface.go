// Package service provides token derivation for validated card numbers.
// Tokens are truncated SHA-256 hex digests, optionally salted for uniqueness.
package service

// HashService hashes the concatenation of parts into a hex digest.
type HashService interface {
	Hash(parts ...[]byte) string
}

// TokenDeriver turns a card digit string into a bounded-length token.
type TokenDeriver interface {
	// Derive returns the token for digits. With unique=false the result depends
	// only on digits; with unique=true a fresh random salt is mixed in on every call.
	Derive(digits string, unique bool) (string, error)
}
