package credentials

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	keeper, err := OpenKeeper(context.Background(), generateLocalSecretsURI(t))
	require.NoError(t, err)

	service := NewService(keeper)
	t.Cleanup(func() {
		assert.NoError(t, service.Close())
	})
	return service
}

func TestOpenKeeper(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestService_EncryptDecrypt(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	for _, plaintext := range []string{"merchant-id", "a-longer-private-key-value-0123456789", "x"} {
		encoded, err := service.Encrypt(ctx, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, encoded)

		decrypted, err := service.Decrypt(ctx, encoded)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestService_Decrypt_Errors(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		_, err := service.Decrypt(ctx, "not base64!")
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		other := newTestService(t)
		encoded, err := other.Encrypt(ctx, "secret")
		require.NoError(t, err)

		_, err = service.Decrypt(ctx, encoded)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decrypt credential")
	})
}

func TestService_DecryptInPlace(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	merchant, err := service.Encrypt(ctx, "merchant")
	require.NoError(t, err)
	private, err := service.Encrypt(ctx, "private")
	require.NoError(t, err)
	empty := ""

	require.NoError(t, service.DecryptInPlace(ctx, &merchant, &empty, &private, nil))
	assert.Equal(t, "merchant", merchant)
	assert.Equal(t, "private", private)
	assert.Empty(t, empty)

	bad := "%%%"
	assert.ErrorIs(t, service.DecryptInPlace(ctx, &bad), ErrInvalidEncoding)
}

// failingKeeper always fails.
type failingKeeper struct{}

func (failingKeeper) Encrypt(context.Context, []byte) ([]byte, error) { return nil, errors.New("kms down") }
func (failingKeeper) Decrypt(context.Context, []byte) ([]byte, error) { return nil, errors.New("kms down") }
func (failingKeeper) Close() error                                    { return nil }

func TestService_KeeperFailure(t *testing.T) {
	service := NewService(failingKeeper{})

	_, err := service.Encrypt(context.Background(), "value")
	assert.ErrorContains(t, err, "failed to encrypt credential")

	_, err = service.Decrypt(context.Background(), base64.StdEncoding.EncodeToString([]byte("x")))
	assert.ErrorContains(t, err, "failed to decrypt credential")
}
