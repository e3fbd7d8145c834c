package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable ledger entry for a completed transfer.
//
// Names and card numbers are copied from both users when the transfer commits,
// so later profile changes never rewrite history.
type Transaction struct {
	Date               time.Time       `db:"date" json:"date"`
	Amount             decimal.Decimal `db:"amount" json:"amount"`
	SenderUsername     string          `db:"sender_username" json:"senderUsername"`
	SenderName         string          `db:"sender_name" json:"senderName"`
	SenderCardNumber   string          `db:"sender_card_number" json:"senderCardNumber"`
	ReceiverUsername   string          `db:"receiver_username" json:"receiverUsername"`
	ReceiverName       string          `db:"receiver_name" json:"receiverName"`
	ReceiverCardNumber string          `db:"receiver_card_number" json:"receiverCardNumber"`
	ID                 uuid.UUID       `db:"id" json:"id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate transfers and signups
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}

// Pending reports whether the key is reserved by a request that has not finished yet
func (k *IdempotencyKey) Pending() bool {
	return k.ResponseStatus == 0
}
