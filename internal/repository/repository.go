// Package repository provides data access layer implementations for the bank API.
package repository

import (
	"context"
	"time"

	"github.com/benx421/minibank/internal/models"
	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByUsernameForUpdate locks the user row until the surrounding transaction ends.
	FindByUsernameForUpdate(ctx context.Context, username string) (*models.User, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	AdjustBalance(ctx context.Context, username string, delta decimal.Decimal) error
	DeleteAll(ctx context.Context) (int64, error)
}

// TransactionRepository defines the interface for ledger data access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	// ListByUsername returns transactions where username is sender or receiver,
	// most recent first. A limit <= 0 returns all of them.
	ListByUsername(ctx context.Context, username string, limit int) ([]models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// IdempotencyRepository stores responses of already processed mutating requests.
// Get returns nil, nil when nothing is cached for the key.
//
// Reserve claims a key with a pending row before the request runs; it reports
// false when another request holds the key or has already completed it.
// Pending rows created before staleBefore may be reclaimed. Store completes a
// reservation (or inserts a fresh row); a completed response is never
// overwritten. Release drops a pending reservation.
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, key, requestPath string, staleBefore time.Time) (bool, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

// Repositories groups the repositories that take part in one unit of work.
type Repositories struct {
	Users        UserRepository
	Transactions TransactionRepository
}

// Store is the record store shared by all services.
type Store interface {
	Users() UserRepository
	Transactions() TransactionRepository
	Idempotency() IdempotencyRepository
	// WithinTx runs fn atomically: either every write made through repos
	// becomes visible or none does.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	PingContext(ctx context.Context) error
	Close() error
}
