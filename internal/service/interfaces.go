package service

import (
	"context"

	"github.com/benx421/minibank/internal/models"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Directory handles user identity records
type Directory interface {
	Signup(ctx context.Context, params SignupParams) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	PurgeUsers(ctx context.Context) (int64, error)
}

// Ledger moves money between users and records every completed transfer
type Ledger interface {
	Transfer(ctx context.Context, senderUsername, receiverUsername string, amount decimal.Decimal) (*models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	PurgeTransactions(ctx context.Context) (int64, error)
}

// Query serves read-only, display-ready views of users and their history
type Query interface {
	ListTransactions(ctx context.Context, username string) ([]FormattedTransaction, error)
	LatestTransactions(ctx context.Context, username string) ([]FormattedTransaction, error)
	CreditCardInfo(ctx context.Context, username string) (*CardInfoView, error)
	Cardholder(ctx context.Context, cardNumber string) (*CardholderView, error)
	Balance(ctx context.Context, username string) (decimal.Decimal, error)
	Profile(ctx context.Context, username string) (*UserView, error)
}

// Ensure concrete types implement interfaces
var (
	_ Directory = (*DirectoryService)(nil)
	_ Ledger    = (*LedgerService)(nil)
	_ Query     = (*QueryService)(nil)
)
