package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/minibank/internal/db"
	"github.com/benx421/minibank/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	uniqueViolation = "23505"

	usernameConstraint   = "users_username_key"
	cardNumberConstraint = "users_credit_card_number_key"
)

const userColumns = `id, username, first_name, last_name, address, birthday, password_hash,
		       balance, credit_card_number, cvv, expiry_date, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository implements UserRepository on PostgreSQL
type userRepository struct {
	db db.DBTX
}

// NewUserRepository creates a new UserRepository on a pool or a transaction
func NewUserRepository(database db.DBTX) UserRepository {
	return &userRepository{db: database}
}

// Create inserts a new user. It reports models.ErrDuplicateUsername or
// models.ErrDuplicateCardNumber when a unique constraint is hit.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, username, first_name, last_name, address, birthday, password_hash,
		                   balance, credit_card_number, cvv, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Address,
		user.Birthday,
		user.PasswordHash,
		user.Balance,
		user.CreditCardNumber,
		user.CVV,
		user.ExpiryDate,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case usernameConstraint:
				return models.ErrDuplicateUsername
			case cardNumberConstraint:
				return models.ErrDuplicateCardNumber
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.findOne(ctx, query, username)
}

// FindByUsernameForUpdate retrieves a user by username and locks the row
func (r *userRepository) FindByUsernameForUpdate(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 FOR UPDATE`
	return r.findOne(ctx, query, username)
}

// FindByCardNumber retrieves the holder of a credit card number
func (r *userRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE credit_card_number = $1`
	return r.findOne(ctx, query, cardNumber)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// List returns every user in signup order
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// AdjustBalance adds delta (which may be negative) to the user's balance
func (r *userRepository) AdjustBalance(ctx context.Context, username string, delta decimal.Decimal) error {
	query := `
		UPDATE users
		SET balance = balance + $2,
		    updated_at = NOW()
		WHERE username = $1
	`

	result, err := r.db.ExecContext(ctx, query, username, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user not found: %w", models.ErrNotFound)
	}

	return nil
}

// DeleteAll removes every user and returns how many were deleted
func (r *userRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}
	return result.RowsAffected()
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Address,
		&user.Birthday,
		&user.PasswordHash,
		&user.Balance,
		&user.CreditCardNumber,
		&user.CVV,
		&user.ExpiryDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
