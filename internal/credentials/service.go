package credentials

import (
	"context"
	"encoding/base64"
	"strings"

	apperrors "github.com/allisson/cardtoken/internal/errors"
)

// ErrInvalidEncoding indicates a ciphertext that is not valid base64.
var ErrInvalidEncoding = apperrors.Wrap(apperrors.ErrInvalidInput, "credential is not valid base64")

// Service encrypts and decrypts credential strings with a Keeper.
type Service struct {
	keeper Keeper
}

// NewService creates a credential service backed by keeper.
func NewService(keeper Keeper) *Service {
	return &Service{keeper: keeper}
}

// Encrypt returns the base64 ciphertext of plaintext.
func (s *Service) Encrypt(ctx context.Context, plaintext string) (string, error) {
	ciphertext, err := s.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt credential")
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt returns the plaintext of a base64 ciphertext produced by Encrypt.
func (s *Service) Decrypt(ctx context.Context, encoded string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", ErrInvalidEncoding
	}

	plaintext, err := s.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to decrypt credential")
	}
	return string(plaintext), nil
}

// DecryptInPlace replaces each non-empty value with its plaintext. Empty
// values are left alone so missing settings surface later as validation errors.
func (s *Service) DecryptInPlace(ctx context.Context, values ...*string) error {
	for _, v := range values {
		if v == nil || *v == "" {
			continue
		}

		plaintext, err := s.Decrypt(ctx, *v)
		if err != nil {
			return err
		}
		*v = plaintext
	}
	return nil
}

// Close releases the underlying keeper.
func (s *Service) Close() error {
	return s.keeper.Close()
}
