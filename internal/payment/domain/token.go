package domain

import (
	"time"
)

// Token is the surrogate handed back to callers in place of the card number.
type Token struct {
	// Value is the hex token, at most MaxTokenLength characters.
	Value string

	// Unique is true when the token was salted with fresh randomness.
	Unique bool

	CreatedAt time.Time
}

// TokenizeInput holds the raw tokenize request fields.
type TokenizeInput struct {
	Number         string
	ExpirationDate string
	Unique         bool
}

// AuthorizeInput holds the raw authorize request fields.
type AuthorizeInput struct {
	Token  string
	Amount string
}
