package service

import (
	"context"
	"errors"
	"time"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/shopspring/decimal"
)

// LedgerService moves money between users and keeps the transaction ledger
type LedgerService struct {
	store repository.Store
	now   func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(store repository.Store) *LedgerService {
	return &LedgerService{
		store: store,
		now:   time.Now,
	}
}

// Transfer debits the sender, credits the receiver and appends a ledger entry
// as one atomic unit. Nothing is written when any step fails.
func (s *LedgerService) Transfer(ctx context.Context, senderUsername, receiverUsername string, amount decimal.Decimal) (*models.Transaction, error) {
	if err := s.validateTransferRequest(senderUsername, receiverUsername, amount); err != nil {
		return nil, err
	}

	var txn *models.Transaction
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		txn, err = s.performTransfer(ctx, repos.Users, repos.Transactions, senderUsername, receiverUsername, amount)
		return err
	})
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, internalError("failed to complete transfer", err)
	}

	return txn, nil
}

// performTransfer contains the core transfer logic. It must run inside a
// storage transaction so that the row locks and the three writes commit together.
func (s *LedgerService) performTransfer(
	ctx context.Context,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	senderUsername, receiverUsername string,
	amount decimal.Decimal,
) (*models.Transaction, error) {
	// Lock rows in a fixed order so opposite transfers cannot deadlock.
	first, second := senderUsername, receiverUsername
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*models.User, 2)
	for _, username := range []string{first, second} {
		user, err := userRepo.FindByUsernameForUpdate(ctx, username)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, userNotFound(username)
			}
			return nil, internalError("failed to load user", err)
		}
		locked[username] = user
	}
	sender, receiver := locked[senderUsername], locked[receiverUsername]

	if sender.Balance.LessThan(amount) {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientBalance,
			Message: "insufficient balance",
		}
	}

	if err := userRepo.AdjustBalance(ctx, sender.Username, amount.Neg()); err != nil {
		return nil, internalError("failed to debit sender", err)
	}
	if err := userRepo.AdjustBalance(ctx, receiver.Username, amount); err != nil {
		return nil, internalError("failed to credit receiver", err)
	}

	txn := &models.Transaction{
		SenderUsername:     sender.Username,
		SenderName:         sender.FullName(),
		SenderCardNumber:   sender.CreditCardNumber,
		ReceiverUsername:   receiver.Username,
		ReceiverName:       receiver.FullName(),
		ReceiverCardNumber: receiver.CreditCardNumber,
		Amount:             amount,
		Date:               s.now().UTC(),
	}
	if err := transactionRepo.Create(ctx, txn); err != nil {
		return nil, internalError("failed to record transaction", err)
	}

	return txn, nil
}

// ListAll returns the whole ledger as stored
func (s *LedgerService) ListAll(ctx context.Context) ([]models.Transaction, error) {
	txns, err := s.store.Transactions().List(ctx)
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}
	return txns, nil
}

// PurgeTransactions wipes the ledger
func (s *LedgerService) PurgeTransactions(ctx context.Context) (int64, error) {
	deleted, err := s.store.Transactions().DeleteAll(ctx)
	if err != nil {
		return 0, internalError("failed to delete transactions", err)
	}
	return deleted, nil
}

func (s *LedgerService) validateTransferRequest(senderUsername, receiverUsername string, amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	if senderUsername == receiverUsername {
		return &ServiceError{
			Code:    ErrCodeSameAccount,
			Message: "sender and receiver must differ",
		}
	}

	return nil
}
