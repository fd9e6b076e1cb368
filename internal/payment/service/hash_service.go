package service

import (
	"crypto/sha256"
	"encoding/hex"
)

type sha256HashService struct{}

// NewSHA256HashService returns the SHA-256 HashService tokens are derived with.
func NewSHA256HashService() HashService {
	return sha256HashService{}
}

// Hash writes parts in order into one SHA-256 digest and returns it hex encoded.
// Hash(a, b) equals Hash(append(a, b...)).
func (sha256HashService) Hash(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
