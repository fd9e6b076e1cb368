package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

var hexTokenRegex = regexp.MustCompile(`^[0-9a-f]{35}$`)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestTokenDeriver_Derive(t *testing.T) {
	deriver := NewTokenDeriver(NewSHA256HashService())

	t.Run("Success_Deterministic", func(t *testing.T) {
		first, err := deriver.Derive("4111111111111111", false)
		require.NoError(t, err)
		second, err := deriver.Derive("4111111111111111", false)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, paymentDomain.MaxTokenLength)
		assert.Regexp(t, hexTokenRegex, first)
	})

	t.Run("Success_DeterministicMatchesTruncatedDigest", func(t *testing.T) {
		sum := sha256.Sum256([]byte("4111111111111111"))
		expected := hex.EncodeToString(sum[:])[:paymentDomain.MaxTokenLength]

		token, err := deriver.Derive("4111111111111111", false)
		require.NoError(t, err)
		assert.Equal(t, expected, token)
	})

	t.Run("Success_Unique", func(t *testing.T) {
		first, err := deriver.Derive("4111111111111111", true)
		require.NoError(t, err)
		second, err := deriver.Derive("4111111111111111", true)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Regexp(t, hexTokenRegex, first)
		assert.Regexp(t, hexTokenRegex, second)
	})

	t.Run("Success_UniqueDiffersFromDeterministic", func(t *testing.T) {
		deterministic, err := deriver.Derive("4111111111111111", false)
		require.NoError(t, err)
		unique, err := deriver.Derive("4111111111111111", true)
		require.NoError(t, err)

		assert.NotEqual(t, deterministic, unique)
	})

	t.Run("Success_EmptyDigits", func(t *testing.T) {
		token, err := deriver.Derive("", false)
		require.NoError(t, err)
		assert.Len(t, token, paymentDomain.MaxTokenLength)
	})
}

func TestTokenDeriver_SaltPrefix(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, paymentDomain.SaltSize)
	deriver := NewTokenDeriverWithSaltReader(NewSHA256HashService(), bytes.NewReader(salt))

	token, err := deriver.Derive("4111111111111111", true)
	require.NoError(t, err)

	sum := sha256.Sum256(append(append([]byte{}, salt...), []byte("4111111111111111")...))
	assert.Equal(t, hex.EncodeToString(sum[:])[:paymentDomain.MaxTokenLength], token)
}

func TestTokenDeriver_SaltError(t *testing.T) {
	deriver := NewTokenDeriverWithSaltReader(NewSHA256HashService(), failingReader{})

	t.Run("Error_Unique", func(t *testing.T) {
		token, err := deriver.Derive("4111111111111111", true)
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Contains(t, err.Error(), "failed to generate token salt")
	})

	t.Run("Success_DeterministicNeedsNoSalt", func(t *testing.T) {
		token, err := deriver.Derive("4111111111111111", false)
		require.NoError(t, err)
		assert.Len(t, token, paymentDomain.MaxTokenLength)
	})
}

func TestTokenDeriver_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	deriver := NewTokenDeriver(NewSHA256HashService())

	const workers = 32
	tokens := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = deriver.Derive("4111111111111111", true)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		seen[tokens[i]] = struct{}{}
	}
	assert.Len(t, seen, workers)
}
