package repository

import (
	"context"
	"database/sql"

	"github.com/benx421/minibank/internal/db"
)

// postgresStore implements Store on a PostgreSQL pool
type postgresStore struct {
	db *db.DB
}

// NewPostgresStore creates a Store backed by database. Closing the store closes the pool.
func NewPostgresStore(database *db.DB) Store {
	return &postgresStore{db: database}
}

func (s *postgresStore) Users() UserRepository {
	return NewUserRepository(s.db)
}

func (s *postgresStore) Transactions() TransactionRepository {
	return NewTransactionRepository(s.db)
}

func (s *postgresStore) Idempotency() IdempotencyRepository {
	return NewIdempotencyRepository(s.db)
}

// WithinTx runs fn in a READ COMMITTED transaction. Callers that need a stable
// read-modify-write must take row locks through the ForUpdate finders.
func (s *postgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return s.db.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, Repositories{
			Users:        NewUserRepository(tx),
			Transactions: NewTransactionRepository(tx),
		})
	})
}

func (s *postgresStore) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *postgresStore) Close() error {
	return s.db.Close()
}
