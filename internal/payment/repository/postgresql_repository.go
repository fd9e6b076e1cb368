// Package repository implements vault persistence for customers and transactions.
// Supports PostgreSQL here and MySQL in the mysql subpackage.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/allisson/cardtoken/internal/database"
	apperrors "github.com/allisson/cardtoken/internal/errors"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// pgUniqueViolation is the SQLSTATE raised on unique constraint violations.
const pgUniqueViolation = "23505"

// PostgreSQLCustomerRepository implements customer persistence for PostgreSQL databases.
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// Create inserts a new customer into the PostgreSQL database.
func (p *PostgreSQLCustomerRepository) Create(ctx context.Context, customer *paymentDomain.Customer) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO customers (id, token, card_prefix, expiration_date, created_at) 
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.Token,
		customer.CardPrefix,
		customer.ExpirationDate,
		customer.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return paymentDomain.ErrCustomerAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create customer")
	}
	return nil
}

// GetByToken retrieves a customer by its token.
func (p *PostgreSQLCustomerRepository) GetByToken(
	ctx context.Context,
	token string,
) (*paymentDomain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token, card_prefix, expiration_date, created_at 
			  FROM customers 
			  WHERE token = $1`

	var customer paymentDomain.Customer
	err := querier.QueryRowContext(ctx, query, token).Scan(
		&customer.ID,
		&customer.Token,
		&customer.CardPrefix,
		&customer.ExpirationDate,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, paymentDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get customer by token")
	}

	return &customer, nil
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQL customer repository.
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{db: db}
}

// PostgreSQLTransactionRepository implements transaction persistence for PostgreSQL databases.
type PostgreSQLTransactionRepository struct {
	db *sql.DB
}

// Create inserts a new transaction into the PostgreSQL database.
func (p *PostgreSQLTransactionRepository) Create(
	ctx context.Context,
	transaction *paymentDomain.Transaction,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO transactions (id, customer_id, amount, merchant_account_id, plan_id, recurring, status, source, created_at) 
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		transaction.ID,
		transaction.CustomerID,
		transaction.Amount,
		transaction.MerchantAccountID,
		transaction.PlanID,
		transaction.Recurring,
		string(transaction.Status),
		transaction.Source,
		transaction.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create transaction")
	}
	return nil
}

// NewPostgreSQLTransactionRepository creates a new PostgreSQL transaction repository.
func NewPostgreSQLTransactionRepository(db *sql.DB) *PostgreSQLTransactionRepository {
	return &PostgreSQLTransactionRepository{db: db}
}
