package service

import (
	"crypto/rand"
	"fmt"
	"io"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

type tokenDeriver struct {
	hashService HashService
	saltReader  io.Reader
}

// NewTokenDeriver creates a TokenDeriver hashing with hashService and drawing
// salts from crypto/rand.
func NewTokenDeriver(hashService HashService) TokenDeriver {
	return NewTokenDeriverWithSaltReader(hashService, rand.Reader)
}

// NewTokenDeriverWithSaltReader creates a TokenDeriver reading salts from
// saltReader. The reader must be safe for concurrent use.
func NewTokenDeriverWithSaltReader(hashService HashService, saltReader io.Reader) TokenDeriver {
	return &tokenDeriver{
		hashService: hashService,
		saltReader:  saltReader,
	}
}

// Derive hashes digits, prefixed with a SaltSize random salt when unique is set,
// and truncates the hex digest to MaxTokenLength characters.
func (d *tokenDeriver) Derive(digits string, unique bool) (string, error) {
	var salt []byte
	if unique {
		salt = make([]byte, paymentDomain.SaltSize)
		if _, err := io.ReadFull(d.saltReader, salt); err != nil {
			return "", fmt.Errorf("failed to generate token salt: %w", err)
		}
	}

	digest := d.hashService.Hash(salt, []byte(digits))
	if len(digest) > paymentDomain.MaxTokenLength {
		digest = digest[:paymentDomain.MaxTokenLength]
	}

	return digest, nil
}
