// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
	customValidation "github.com/allisson/cardtoken/internal/validation"
)

// TokenizeRequest contains the card data to tokenize.
// Missing fields are reported by the use case, not by Validate.
type TokenizeRequest struct {
	Number         string `json:"number"`
	ExpirationDate string `json:"expiration_date"`
	Unique         *int   `json:"unique,omitempty"` // 0 or 1
}

// Validate checks if the tokenize request is valid.
func (r *TokenizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number, validation.Length(0, 64), customValidation.Printable),
		validation.Field(&r.ExpirationDate, validation.Length(0, 32), customValidation.Printable),
		validation.Field(&r.Unique, validation.When(r.Unique != nil, customValidation.UniqueFlag)),
	)
}

// ToInput converts the request into use case input.
func (r *TokenizeRequest) ToInput() *paymentDomain.TokenizeInput {
	return &paymentDomain.TokenizeInput{
		Number:         r.Number,
		ExpirationDate: r.ExpirationDate,
		Unique:         r.Unique != nil && *r.Unique == 1,
	}
}

// AuthorizeRequest contains the parameters for submitting a sale.
type AuthorizeRequest struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

// Validate checks if the authorize request is valid.
func (r *AuthorizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token, validation.Length(0, paymentDomain.MaxTokenLength), customValidation.Printable),
		validation.Field(&r.Amount, validation.Length(0, 32), customValidation.Printable),
	)
}

// ToInput converts the request into use case input.
func (r *AuthorizeRequest) ToInput() *paymentDomain.AuthorizeInput {
	return &paymentDomain.AuthorizeInput{
		Token:  r.Token,
		Amount: r.Amount,
	}
}
