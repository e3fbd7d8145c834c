package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a bank customer together with the card issued at signup
type User struct {
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
	Birthday         time.Time       `db:"birthday" json:"birthday"`
	ExpiryDate       time.Time       `db:"expiry_date" json:"expiryDate"`
	Balance          decimal.Decimal `db:"balance" json:"balance"`
	Username         string          `db:"username" json:"username"`
	FirstName        string          `db:"first_name" json:"firstName"`
	LastName         string          `db:"last_name" json:"lastName"`
	Address          string          `db:"address" json:"address"`
	PasswordHash     string          `db:"password_hash" json:"-"`
	CreditCardNumber string          `db:"credit_card_number" json:"creditCardNumber"`
	CVV              string          `db:"cvv" json:"cvv"`
	ID               uuid.UUID       `db:"id" json:"id"`
}

// FullName is the display name copied into ledger snapshots.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
