package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/cardtoken/internal/database"
	apperrors "github.com/allisson/cardtoken/internal/errors"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// VaultGateway stores customers and transactions in the application database.
type VaultGateway struct {
	txManager       database.TxManager
	customerRepo    CustomerRepository
	transactionRepo TransactionRepository
	credentials     Credentials
}

// CreateCustomer stores the vault entry for card under token. An existing
// entry for the same token is returned as is.
func (g *VaultGateway) CreateCustomer(
	ctx context.Context,
	card *paymentDomain.Card,
	token string,
) (*paymentDomain.Customer, error) {
	var customer *paymentDomain.Customer

	err := g.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := g.customerRepo.GetByToken(ctx, token)
		if err == nil {
			customer = existing
			return nil
		}
		if !errors.Is(err, paymentDomain.ErrTokenNotFound) {
			return err
		}

		newCustomer := paymentDomain.NewCustomer(card, token)
		if err := g.customerRepo.Create(ctx, newCustomer); err != nil {
			return err
		}

		customer = newCustomer
		return nil
	})
	if errors.Is(err, paymentDomain.ErrCustomerAlreadyExists) {
		// Lost a race with a concurrent request for the same deterministic token.
		return g.customerRepo.GetByToken(ctx, token)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// Sale records an authorized transaction against the customer owning the token.
func (g *VaultGateway) Sale(
	ctx context.Context,
	req *paymentDomain.SaleRequest,
) (*paymentDomain.Transaction, error) {
	var transaction *paymentDomain.Transaction

	err := g.txManager.WithTx(ctx, func(ctx context.Context) error {
		customer, err := g.customerRepo.GetByToken(ctx, req.Token)
		if err != nil {
			return err
		}

		transaction = &paymentDomain.Transaction{
			ID:                uuid.Must(uuid.NewV7()),
			CustomerID:        customer.ID,
			Amount:            req.Amount,
			MerchantAccountID: g.credentials.MerchantID,
			Status:            paymentDomain.TransactionStatusAuthorized,
			Source:            paymentDomain.TransactionSourceAPI,
			CreatedAt:         time.Now().UTC(),
		}

		return g.transactionRepo.Create(ctx, transaction)
	})
	if err != nil {
		if errors.Is(err, paymentDomain.ErrTokenNotFound) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to create sale")
	}

	return transaction, nil
}

// NewVaultGateway creates a VaultGateway after validating credentials.
func NewVaultGateway(
	txManager database.TxManager,
	customerRepo CustomerRepository,
	transactionRepo TransactionRepository,
	credentials Credentials,
) (*VaultGateway, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	return &VaultGateway{
		txManager:       txManager,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		credentials:     credentials,
	}, nil
}
