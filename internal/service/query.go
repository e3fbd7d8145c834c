package service

import (
	"context"
	"errors"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LatestTransactionsLimit caps LatestTransactions
const LatestTransactionsLimit = 5

// Transaction directions as seen by the requesting user
const (
	DirectionOutgoing = "Outgoing"
	DirectionIncoming = "Incoming"
)

// FormattedTransaction is a ledger entry seen from one party's side
type FormattedTransaction struct {
	Title  string
	Name   string
	Amount string
	Date   string
}

// CardInfoView is the display form of a user's card
type CardInfoView struct {
	CVV        string
	ExpiryDate string
	Name       string
	CardNumber string
	Balance    string
}

// CardholderView is the public profile behind a card number
type CardholderView struct {
	Name             string
	Address          string
	Birthday         string
	Username         string
	CreditCardNumber string
	ID               uuid.UUID
}

// UserView is a user's profile without credentials
type UserView struct {
	FirstName        string
	LastName         string
	Address          string
	Birthday         string
	Username         string
	CreditCardNumber string
	ID               uuid.UUID
}

// QueryService serves read-only views over users and the ledger
type QueryService struct {
	store repository.Store
}

// NewQueryService creates a new QueryService
func NewQueryService(store repository.Store) *QueryService {
	return &QueryService{store: store}
}

// ListTransactions returns the user's whole history, most recent first
func (s *QueryService) ListTransactions(ctx context.Context, username string) ([]FormattedTransaction, error) {
	return s.history(ctx, username, 0)
}

// LatestTransactions returns the user's most recent transactions
func (s *QueryService) LatestTransactions(ctx context.Context, username string) ([]FormattedTransaction, error) {
	return s.history(ctx, username, LatestTransactionsLimit)
}

func (s *QueryService) history(ctx context.Context, username string, limit int) ([]FormattedTransaction, error) {
	if _, err := findUser(ctx, s.store.Users(), username); err != nil {
		return nil, err
	}

	txns, err := s.store.Transactions().ListByUsername(ctx, username, limit)
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	formatted := make([]FormattedTransaction, 0, len(txns))
	for i := range txns {
		formatted = append(formatted, formatTransaction(&txns[i], username))
	}
	return formatted, nil
}

func formatTransaction(txn *models.Transaction, username string) FormattedTransaction {
	title, name := DirectionIncoming, txn.SenderName
	if txn.SenderUsername == username {
		title, name = DirectionOutgoing, txn.ReceiverName
	}

	return FormattedTransaction{
		Title:  title,
		Name:   name,
		Amount: FormatAmount(txn.Amount),
		Date:   FormatTransactionDate(txn.Date),
	}
}

// CreditCardInfo returns the user's card details formatted for display
func (s *QueryService) CreditCardInfo(ctx context.Context, username string) (*CardInfoView, error) {
	user, err := findUser(ctx, s.store.Users(), username)
	if err != nil {
		return nil, err
	}

	return &CardInfoView{
		CVV:        user.CVV,
		ExpiryDate: FormatExpiry(user.ExpiryDate),
		Name:       user.FullName(),
		CardNumber: FormatCardNumber(user.CreditCardNumber),
		Balance:    FormatAmount(user.Balance),
	}, nil
}

// Cardholder finds who owns a card number
func (s *QueryService) Cardholder(ctx context.Context, cardNumber string) (*CardholderView, error) {
	// Issued numbers always pass Luhn, so anything else cannot be on file.
	if err := ValidateLuhn(cardNumber); err != nil {
		return nil, cardNotFound()
	}

	user, err := s.store.Users().FindByCardNumber(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, cardNotFound()
		}
		return nil, internalError("failed to find cardholder", err)
	}

	return &CardholderView{
		ID:               user.ID,
		Name:             user.FullName(),
		Address:          user.Address,
		Birthday:         FormatBirthday(user.Birthday),
		Username:         user.Username,
		CreditCardNumber: FormatCardNumber(user.CreditCardNumber),
	}, nil
}

// Balance returns the user's current balance
func (s *QueryService) Balance(ctx context.Context, username string) (decimal.Decimal, error) {
	user, err := findUser(ctx, s.store.Users(), username)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

// Profile returns the user's profile
func (s *QueryService) Profile(ctx context.Context, username string) (*UserView, error) {
	user, err := findUser(ctx, s.store.Users(), username)
	if err != nil {
		return nil, err
	}

	return &UserView{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Address:          user.Address,
		Birthday:         FormatBirthday(user.Birthday),
		Username:         user.Username,
		CreditCardNumber: user.CreditCardNumber,
	}, nil
}

func cardNotFound() *ServiceError {
	return &ServiceError{
		Code:    ErrCodeCardNotFound,
		Message: "cardholder not found",
	}
}
