package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/minibank/internal/db"
	"github.com/benx421/minibank/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{
	"id", "username", "first_name", "last_name", "address", "birthday", "password_hash",
	"balance", "credit_card_number", "cvv", "expiry_date", "created_at", "updated_at",
}

var transactionColumnNames = []string{
	"id", "sender_username", "sender_name", "sender_card_number",
	"receiver_username", "receiver_name", "receiver_card_number", "amount", "date",
}

func setupMockDB(t *testing.T) (*db.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "unmet sql expectations")
		_ = sqlDB.Close()
	})

	return db.NewTestDB(sqlDB), mock
}

func testUser(username, cardNumber string, balance int64) *models.User {
	return &models.User{
		ID:               uuid.New(),
		Username:         username,
		FirstName:        "Test",
		LastName:         "User",
		Address:          "1 Main St",
		Birthday:         time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		PasswordHash:     "$2a$04$hash",
		Balance:          decimal.NewFromInt(balance),
		CreditCardNumber: cardNumber,
		CVV:              "123",
		ExpiryDate:       time.Date(2030, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
}

func userRow(rows *sqlmock.Rows, u *models.User) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		u.ID.String(), u.Username, u.FirstName, u.LastName, u.Address, u.Birthday, u.PasswordHash,
		u.Balance.String(), u.CreditCardNumber, u.CVV, u.ExpiryDate, now, now,
	)
}

func testTransaction(sender, receiver string, amount int64) *models.Transaction {
	return &models.Transaction{
		SenderUsername:     sender,
		SenderName:         sender + " Sender",
		SenderCardNumber:   "4000001234567899",
		ReceiverUsername:   receiver,
		ReceiverName:       receiver + " Receiver",
		ReceiverCardNumber: "4000009876543217",
		Amount:             decimal.NewFromInt(amount),
	}
}
