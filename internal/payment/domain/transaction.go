package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the gateway-side state of a sale.
type TransactionStatus string

const (
	TransactionStatusAuthorized TransactionStatus = "authorized"
	TransactionStatusProcessed  TransactionStatus = "processed"
)

// TransactionSourceAPI marks sales submitted through the API.
const TransactionSourceAPI = "api"

// SaleRequest asks the gateway to charge amount against the vaulted token.
type SaleRequest struct {
	Token  string
	Amount string
}

// Transaction is the descriptor returned by the gateway for a sale.
type Transaction struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	Amount            string
	MerchantAccountID string
	PlanID            string
	Recurring         bool
	Status            TransactionStatus
	Source            string
	CreatedAt         time.Time
}

// IsValidated reports whether the gateway already processed the transaction.
func (t *Transaction) IsValidated() bool {
	return t.Status == TransactionStatusProcessed
}
