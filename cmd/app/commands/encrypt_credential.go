package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// CredentialEncrypter encrypts a plaintext credential into its stored form.
type CredentialEncrypter interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
}

// RunEncryptCredential encrypts a gateway credential and prints the base64
// ciphertext to use in the GATEWAY_* environment variables.
func RunEncryptCredential(
	ctx context.Context,
	encrypter CredentialEncrypter,
	logger *slog.Logger,
	writer io.Writer,
	value string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if strings.TrimSpace(value) == "" {
		return errors.New("value must not be blank")
	}

	ciphertext, err := encrypter.Encrypt(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	if format == formatJSON {
		if err := writeJSON(writer, map[string]string{"ciphertext": ciphertext}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, ciphertext)
	}

	logger.Info("credential encrypted")

	return nil
}
