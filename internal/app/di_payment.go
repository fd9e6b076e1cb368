package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/cardtoken/internal/credentials"
	"github.com/allisson/cardtoken/internal/database"
	paymentGateway "github.com/allisson/cardtoken/internal/payment/gateway"
	paymentHTTP "github.com/allisson/cardtoken/internal/payment/http"
	paymentRepository "github.com/allisson/cardtoken/internal/payment/repository"
	paymentMySQL "github.com/allisson/cardtoken/internal/payment/repository/mysql"
	paymentService "github.com/allisson/cardtoken/internal/payment/service"
	paymentUseCase "github.com/allisson/cardtoken/internal/payment/usecase"
)

// CustomerRepository returns the customer repository for the configured driver.
func (c *Container) CustomerRepository() (paymentGateway.CustomerRepository, error) {
	var err error
	c.customerRepositoryInit.Do(func() {
		c.customerRepository, err = c.initCustomerRepository()
		if err != nil {
			c.initErrors["customerRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerRepository"]; exists {
		return nil, storedErr
	}
	return c.customerRepository, nil
}

// TransactionRepository returns the transaction repository for the configured driver.
func (c *Container) TransactionRepository() (paymentGateway.TransactionRepository, error) {
	var err error
	c.transactionRepositoryInit.Do(func() {
		c.transactionRepository, err = c.initTransactionRepository()
		if err != nil {
			c.initErrors["transactionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transactionRepository"]; exists {
		return nil, storedErr
	}
	return c.transactionRepository, nil
}

// GatewayCredentials returns the gateway credentials, decrypted with KMS when configured.
func (c *Container) GatewayCredentials() (*paymentGateway.Credentials, error) {
	var err error
	c.gatewayCredentialsInit.Do(func() {
		c.gatewayCredentials, err = c.initGatewayCredentials()
		if err != nil {
			c.initErrors["gatewayCredentials"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gatewayCredentials"]; exists {
		return nil, storedErr
	}
	return c.gatewayCredentials, nil
}

// Gateway returns the vault gateway.
func (c *Container) Gateway() (paymentUseCase.Gateway, error) {
	var err error
	c.gatewayInit.Do(func() {
		c.gateway, err = c.initGateway()
		if err != nil {
			c.initErrors["gateway"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gateway"]; exists {
		return nil, storedErr
	}
	return c.gateway, nil
}

// PaymentUseCase returns the payment use case.
func (c *Container) PaymentUseCase() (paymentUseCase.PaymentUseCase, error) {
	var err error
	c.paymentUseCaseInit.Do(func() {
		c.paymentUseCase, err = c.initPaymentUseCase()
		if err != nil {
			c.initErrors["paymentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["paymentUseCase"]; exists {
		return nil, storedErr
	}
	return c.paymentUseCase, nil
}

// PaymentHandler returns the payment HTTP handler.
func (c *Container) PaymentHandler() (*paymentHTTP.PaymentHandler, error) {
	var err error
	c.paymentHandlerInit.Do(func() {
		c.paymentHandler, err = c.initPaymentHandler()
		if err != nil {
			c.initErrors["paymentHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["paymentHandler"]; exists {
		return nil, storedErr
	}
	return c.paymentHandler, nil
}

// initCustomerRepository creates the customer repository based on the database driver.
func (c *Container) initCustomerRepository() (paymentGateway.CustomerRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for customer repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return paymentMySQL.NewMySQLCustomerRepository(db), nil
	case database.DriverPostgres:
		return paymentRepository.NewPostgreSQLCustomerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTransactionRepository creates the transaction repository based on the database driver.
func (c *Container) initTransactionRepository() (paymentGateway.TransactionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for transaction repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return paymentMySQL.NewMySQLTransactionRepository(db), nil
	case database.DriverPostgres:
		return paymentRepository.NewPostgreSQLTransactionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initGatewayCredentials reads the credentials from config and decrypts them
// when a KMS key is configured.
func (c *Container) initGatewayCredentials() (*paymentGateway.Credentials, error) {
	creds := paymentGateway.Credentials{
		MerchantID: c.config.GatewayMerchantID,
		PublicKey:  c.config.GatewayPublicKey,
		PrivateKey: c.config.GatewayPrivateKey,
	}

	if c.config.CredentialsEncrypted() {
		ctx := context.Background()

		keeper, err := credentials.OpenKeeper(ctx, c.config.KMSKeyURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open keeper for gateway credentials: %w", err)
		}

		service := credentials.NewService(keeper)
		defer func() {
			_ = service.Close()
		}()

		if err := service.DecryptInPlace(ctx, &creds.MerchantID, &creds.PublicKey, &creds.PrivateKey); err != nil {
			return nil, fmt.Errorf("failed to decrypt gateway credentials: %w", err)
		}
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c.Logger().Info("gateway credentials loaded",
		slog.Any("merchant", creds),
		slog.Bool("encrypted", c.config.CredentialsEncrypted()),
	)

	return &creds, nil
}

// initGateway creates the vault gateway with all its dependencies.
func (c *Container) initGateway() (paymentUseCase.Gateway, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for gateway: %w", err)
	}

	customerRepository, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for gateway: %w", err)
	}

	transactionRepository, err := c.TransactionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction repository for gateway: %w", err)
	}

	creds, err := c.GatewayCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials for gateway: %w", err)
	}

	gateway, err := paymentGateway.NewVaultGateway(txManager, customerRepository, transactionRepository, *creds)
	if err != nil {
		return nil, err
	}
	return gateway, nil
}

// initPaymentUseCase creates the payment use case, wrapped with metrics when enabled.
func (c *Container) initPaymentUseCase() (paymentUseCase.PaymentUseCase, error) {
	gateway, err := c.Gateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway for payment use case: %w", err)
	}

	tokenDeriver := paymentService.NewTokenDeriver(paymentService.NewSHA256HashService())

	baseUseCase := paymentUseCase.NewPaymentUseCase(gateway, tokenDeriver, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for payment use case: %w", err)
		}
		return paymentUseCase.NewPaymentUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initPaymentHandler creates the payment HTTP handler.
func (c *Container) initPaymentHandler() (*paymentHTTP.PaymentHandler, error) {
	useCase, err := c.PaymentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment use case for payment handler: %w", err)
	}

	return paymentHTTP.NewPaymentHandler(useCase, c.Logger()), nil
}
