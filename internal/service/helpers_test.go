package service

import (
	"context"
	"testing"
	"time"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubStore hands out fixed repositories, usually mocks.
type stubStore struct {
	users        repository.UserRepository
	transactions repository.TransactionRepository
	txErr        error
}

func (s *stubStore) Users() repository.UserRepository               { return s.users }
func (s *stubStore) Transactions() repository.TransactionRepository { return s.transactions }
func (s *stubStore) Idempotency() repository.IdempotencyRepository  { return nil }
func (s *stubStore) PingContext(context.Context) error              { return nil }
func (s *stubStore) Close() error                                   { return nil }

func (s *stubStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if s.txErr != nil {
		return s.txErr
	}
	return fn(ctx, repository.Repositories{Users: s.users, Transactions: s.transactions})
}

func newUser(username, first, last, cardNumber string, balance string) *models.User {
	return &models.User{
		ID:               uuid.New(),
		Username:         username,
		FirstName:        first,
		LastName:         last,
		Address:          "1 Main St",
		Birthday:         time.Date(1990, time.July, 4, 0, 0, 0, 0, time.UTC),
		Balance:          decimal.RequireFromString(balance),
		CreditCardNumber: cardNumber,
		CVV:              "123",
		ExpiryDate:       time.Date(2029, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

// seedUsers stores users in a fresh memory store
func seedUsers(t *testing.T, users ...*models.User) *repository.MemoryStore {
	t.Helper()

	store := repository.NewMemoryStore()
	for _, u := range users {
		require.NoError(t, store.Users().Create(context.Background(), u))
	}
	return store
}

func balanceOf(t *testing.T, store repository.Store, username string) decimal.Decimal {
	t.Helper()

	u, err := store.Users().FindByUsername(context.Background(), username)
	require.NoError(t, err)
	return u.Balance
}

// decimalEq matches a decimal argument by value rather than representation
func decimalEq(expected string) any {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func assertServiceErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, code, svcErr.Code)
}
