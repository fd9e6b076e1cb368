package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cardtoken/internal/errors"
)

func TestPrintable(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "digits", input: "4111111111111111"},
		{name: "digits with spaces", input: "4111 1111 1111 1111"},
		{name: "expiration", input: "12/2030"},
		{name: "empty string is left to required checks", input: ""},
		{name: "null byte", input: "4111\x001111", shouldErr: true},
		{name: "newline", input: "12/2030\n", shouldErr: true},
		{name: "tab", input: "4111\t1111", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.input, Printable)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "control characters")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUniqueFlag(t *testing.T) {
	tests := []struct {
		name      string
		input     int
		shouldErr bool
	}{
		{name: "zero", input: 0},
		{name: "one", input: 1},
		{name: "two", input: 2, shouldErr: true},
		{name: "negative", input: -1, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.input, UniqueFlag)
			if tt.shouldErr {
				assert.EqualError(t, err, "must be 0 or 1")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("unique: must be 0 or 1."))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "unique: must be 0 or 1.: invalid input", err.Error())
}
