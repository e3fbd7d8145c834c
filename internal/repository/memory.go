package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benx421/minibank/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryStore is an in-process Store for development and tests.
//
// All writes go through a single mutex. WithinTx holds the lock for the whole
// unit of work and undoes its writes when fn fails, so transfers stay atomic
// and serialized exactly like the row-locked PostgreSQL path.
type MemoryStore struct {
	users        map[string]*models.User
	idempotency  map[string]models.IdempotencyKey
	transactions []models.Transaction
	mu           sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]*models.User),
		idempotency: make(map[string]models.IdempotencyKey),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Users() UserRepository {
	return &memoryUsers{s: s}
}

func (s *MemoryStore) Transactions() TransactionRepository {
	return &memoryTransactions{s: s}
}

func (s *MemoryStore) Idempotency() IdempotencyRepository {
	return &memoryIdempotency{s: s}
}

// WithinTx runs fn while holding the store lock and rolls back its writes on error or panic.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{}
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			panic(p)
		}
		if err != nil {
			tx.rollback()
		}
	}()

	return fn(ctx, Repositories{
		Users:        &memoryUsers{s: s, tx: tx},
		Transactions: &memoryTransactions{s: s, tx: tx},
	})
}

func (s *MemoryStore) PingContext(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() error {
	return nil
}

// memoryTx collects undo steps for writes made inside WithinTx.
type memoryTx struct {
	undo []func()
}

func (tx *memoryTx) record(step func()) {
	if tx != nil {
		tx.undo = append(tx.undo, step)
	}
}

func (tx *memoryTx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

// lock acquires the store lock unless the caller already runs inside WithinTx.
func lock(s *MemoryStore, tx *memoryTx, write bool) func() {
	switch {
	case tx != nil:
		return func() {}
	case write:
		s.mu.Lock()
		return s.mu.Unlock
	default:
		s.mu.RLock()
		return s.mu.RUnlock
	}
}

type memoryUsers struct {
	s  *MemoryStore
	tx *memoryTx
}

func (r *memoryUsers) Create(_ context.Context, user *models.User) error {
	defer lock(r.s, r.tx, true)()

	if _, exists := r.s.users[user.Username]; exists {
		return models.ErrDuplicateUsername
	}
	for _, u := range r.s.users {
		if u.CreditCardNumber == user.CreditCardNumber {
			return models.ErrDuplicateCardNumber
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := *user
	r.s.users[user.Username] = &stored
	r.tx.record(func() { delete(r.s.users, user.Username) })

	return nil
}

func (r *memoryUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	defer lock(r.s, r.tx, false)()

	u, ok := r.s.users[username]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

// FindByUsernameForUpdate needs no row lock: WithinTx already holds the store lock.
func (r *memoryUsers) FindByUsernameForUpdate(ctx context.Context, username string) (*models.User, error) {
	return r.FindByUsername(ctx, username)
}

func (r *memoryUsers) FindByCardNumber(_ context.Context, cardNumber string) (*models.User, error) {
	defer lock(r.s, r.tx, false)()

	for _, u := range r.s.users {
		if u.CreditCardNumber == cardNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
}

func (r *memoryUsers) List(_ context.Context) ([]models.User, error) {
	defer lock(r.s, r.tx, false)()

	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Username < users[j].Username
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *memoryUsers) AdjustBalance(_ context.Context, username string, delta decimal.Decimal) error {
	defer lock(r.s, r.tx, true)()

	u, ok := r.s.users[username]
	if !ok {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}

	prevBalance, prevUpdated := u.Balance, u.UpdatedAt
	u.Balance = u.Balance.Add(delta)
	u.UpdatedAt = time.Now().UTC()
	r.tx.record(func() {
		u.Balance = prevBalance
		u.UpdatedAt = prevUpdated
	})

	return nil
}

func (r *memoryUsers) DeleteAll(_ context.Context) (int64, error) {
	defer lock(r.s, r.tx, true)()

	prev := r.s.users
	r.s.users = make(map[string]*models.User)
	r.tx.record(func() { r.s.users = prev })

	return int64(len(prev)), nil
}

type memoryTransactions struct {
	s  *MemoryStore
	tx *memoryTx
}

func (r *memoryTransactions) Create(_ context.Context, txn *models.Transaction) error {
	defer lock(r.s, r.tx, true)()

	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now().UTC()
	}

	n := len(r.s.transactions)
	r.s.transactions = append(r.s.transactions, *txn)
	r.tx.record(func() { r.s.transactions = r.s.transactions[:n] })

	return nil
}

func (r *memoryTransactions) ListByUsername(_ context.Context, username string, limit int) ([]models.Transaction, error) {
	defer lock(r.s, r.tx, false)()

	// Walk backwards so entries with equal dates keep newest-insert-first order.
	txns := []models.Transaction{}
	for i := len(r.s.transactions) - 1; i >= 0; i-- {
		t := r.s.transactions[i]
		if t.SenderUsername == username || t.ReceiverUsername == username {
			txns = append(txns, t)
		}
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})

	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}
	return txns, nil
}

func (r *memoryTransactions) List(_ context.Context) ([]models.Transaction, error) {
	defer lock(r.s, r.tx, false)()

	txns := make([]models.Transaction, len(r.s.transactions))
	copy(txns, r.s.transactions)
	return txns, nil
}

func (r *memoryTransactions) DeleteAll(_ context.Context) (int64, error) {
	defer lock(r.s, r.tx, true)()

	prev := r.s.transactions
	r.s.transactions = nil
	r.tx.record(func() { r.s.transactions = prev })

	return int64(len(prev)), nil
}

type memoryIdempotency struct {
	s *MemoryStore
}

func idempotencyMapKey(key, requestPath string) string {
	return requestPath + "\x00" + key
}

func (r *memoryIdempotency) Get(_ context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cached, ok := r.s.idempotency[idempotencyMapKey(key, requestPath)]
	if !ok {
		return nil, nil
	}
	return &cached, nil
}

func (r *memoryIdempotency) Reserve(_ context.Context, key, requestPath string, staleBefore time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := idempotencyMapKey(key, requestPath)
	if existing, exists := r.s.idempotency[k]; exists {
		if !existing.Pending() || !existing.CreatedAt.Before(staleBefore) {
			return false, nil
		}
	}

	r.s.idempotency[k] = models.IdempotencyKey{
		Key:         key,
		RequestPath: requestPath,
		CreatedAt:   time.Now().UTC(),
	}
	return true, nil
}

func (r *memoryIdempotency) Store(_ context.Context, idemKey *models.IdempotencyKey) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := idempotencyMapKey(idemKey.Key, idemKey.RequestPath)
	if existing, exists := r.s.idempotency[k]; exists && !existing.Pending() {
		return nil
	}
	if idemKey.CreatedAt.IsZero() {
		idemKey.CreatedAt = time.Now().UTC()
	}
	r.s.idempotency[k] = *idemKey
	return nil
}

func (r *memoryIdempotency) Release(_ context.Context, key, requestPath string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := idempotencyMapKey(key, requestPath)
	if existing, exists := r.s.idempotency[k]; exists && existing.Pending() {
		delete(r.s.idempotency, k)
	}
	return nil
}
