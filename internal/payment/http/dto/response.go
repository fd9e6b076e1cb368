package dto

import (
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// CreatedAtLayout is the day-first timestamp layout used in transaction responses.
const CreatedAtLayout = "02/01/2006, 15:04:05"

// TokenizeResponse represents the result of tokenizing a card.
type TokenizeResponse struct {
	Token string `json:"token"`
}

// MapTokenToTokenizeResponse converts a domain token to a tokenize API response.
func MapTokenToTokenizeResponse(token *paymentDomain.Token) TokenizeResponse {
	return TokenizeResponse{Token: token.Value}
}

// TransactionResponse is the transaction descriptor returned by the authorize endpoint.
type TransactionResponse struct {
	ID                string         `json:"id"`
	Amount            string         `json:"amount"`
	MerchantAccountID string         `json:"merchant_account_id"`
	PlanID            string         `json:"plan_id"`
	Recurring         bool           `json:"recurring"`
	Refund            map[string]any `json:"refund"`
	Status            string         `json:"status"`
	TransactionSource string         `json:"transaction_source"`
	CreatedAt         string         `json:"created_at"`
}

// MapTransactionToResponse converts a domain transaction to an API response.
func MapTransactionToResponse(transaction *paymentDomain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                transaction.ID.String(),
		Amount:            transaction.Amount,
		MerchantAccountID: transaction.MerchantAccountID,
		PlanID:            transaction.PlanID,
		Recurring:         transaction.Recurring,
		Refund:            map[string]any{},
		Status:            string(transaction.Status),
		TransactionSource: transaction.Source,
		CreatedAt:         transaction.CreatedAt.Format(CreatedAtLayout),
	}
}
