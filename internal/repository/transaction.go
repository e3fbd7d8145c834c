package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/benx421/minibank/internal/db"
	"github.com/benx421/minibank/internal/models"
	"github.com/google/uuid"
)

const transactionColumns = `id, sender_username, sender_name, sender_card_number,
		       receiver_username, receiver_name, receiver_card_number, amount, date`

// transactionRepository implements TransactionRepository on PostgreSQL
type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository on a pool or a transaction
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

// Create appends a ledger entry
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now().UTC()
	}

	query := `
		INSERT INTO transactions (id, sender_username, sender_name, sender_card_number,
		                          receiver_username, receiver_name, receiver_card_number, amount, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.SenderUsername,
		txn.SenderName,
		txn.SenderCardNumber,
		txn.ReceiverUsername,
		txn.ReceiverName,
		txn.ReceiverCardNumber,
		txn.Amount,
		txn.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListByUsername returns the user's sent and received transactions, newest first
func (r *transactionRepository) ListByUsername(ctx context.Context, username string, limit int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE sender_username = $1 OR receiver_username = $1
		ORDER BY date DESC
	`
	args := []any{username}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	return r.query(ctx, query, args...)
}

// List returns the whole ledger in storage order
func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return r.query(ctx, `SELECT `+transactionColumns+` FROM transactions`)
}

// DeleteAll wipes the ledger and returns how many entries were deleted
func (r *transactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	return result.RowsAffected()
}

func (r *transactionRepository) query(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.SenderUsername,
			&txn.SenderName,
			&txn.SenderCardNumber,
			&txn.ReceiverUsername,
			&txn.ReceiverName,
			&txn.ReceiverCardNumber,
			&txn.Amount,
			&txn.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}
