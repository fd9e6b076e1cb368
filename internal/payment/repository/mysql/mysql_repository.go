// Package mysql implements vault persistence for customers and transactions on MySQL.
// UUIDs are stored as BINARY(16).
package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/cardtoken/internal/database"
	apperrors "github.com/allisson/cardtoken/internal/errors"
	paymentDomain "github.com/allisson/cardtoken/internal/payment/domain"
)

// MySQL error number for duplicate entries.
const mysqlDuplicateEntry = 1062

// MySQLCustomerRepository implements customer persistence for MySQL databases.
type MySQLCustomerRepository struct {
	db *sql.DB
}

// Create inserts a new customer into the MySQL database.
func (m *MySQLCustomerRepository) Create(ctx context.Context, customer *paymentDomain.Customer) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO customers (id, token, card_prefix, expiration_date, created_at) 
			  VALUES (?, ?, ?, ?, ?)`

	id, err := marshalID(customer.ID, "customer")
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		customer.Token,
		customer.CardPrefix,
		customer.ExpirationDate,
		customer.CreatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return paymentDomain.ErrCustomerAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create customer")
	}
	return nil
}

// GetByToken retrieves a customer by its token.
func (m *MySQLCustomerRepository) GetByToken(
	ctx context.Context,
	token string,
) (*paymentDomain.Customer, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token, card_prefix, expiration_date, created_at 
			  FROM customers 
			  WHERE token = ?`

	var customer paymentDomain.Customer
	var id []byte

	err := querier.QueryRowContext(ctx, query, token).Scan(
		&id,
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

	if err := customer.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal customer id")
	}

	return &customer, nil
}

// NewMySQLCustomerRepository creates a new MySQL customer repository.
func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

// MySQLTransactionRepository implements transaction persistence for MySQL databases.
type MySQLTransactionRepository struct {
	db *sql.DB
}

// Create inserts a new transaction into the MySQL database.
func (m *MySQLTransactionRepository) Create(
	ctx context.Context,
	transaction *paymentDomain.Transaction,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO transactions (id, customer_id, amount, merchant_account_id, plan_id, recurring, status, source, created_at) 
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := marshalID(transaction.ID, "transaction")
	if err != nil {
		return err
	}

	customerID, err := marshalID(transaction.CustomerID, "customer")
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		customerID,
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

// NewMySQLTransactionRepository creates a new MySQL transaction repository.
func NewMySQLTransactionRepository(db *sql.DB) *MySQLTransactionRepository {
	return &MySQLTransactionRepository{db: db}
}

func marshalID(id uuid.UUID, name string) ([]byte, error) {
	b, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to marshal %s id", name)
	}
	return b, nil
}
