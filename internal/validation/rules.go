// Package validation holds request validation rules and the card field parsers.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardtoken/internal/errors"
)

// WrapValidationError turns a rule failure into ErrInvalidInput so handlers answer 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Printable rejects strings containing control characters.
var Printable = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.IndexFunc(s, unicode.IsControl) < 0
	},
	validation.NewError("validation_printable", "must not contain control characters"),
)

// UniqueFlag accepts the two values of the tokenize unique flag.
var UniqueFlag = validation.In(0, 1).Error("must be 0 or 1")
