package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorCode defines model for ErrorCode.
type ErrorCode string

// Defines values for ErrorCode.
const (
	ErrorCodeUserNotFound        ErrorCode = "user_not_found"
	ErrorCodeCardNotFound        ErrorCode = "card_not_found"
	ErrorCodeUsernameTaken       ErrorCode = "username_taken"
	ErrorCodeInsufficientBalance ErrorCode = "insufficient_balance"
	ErrorCodeInvalidCredentials  ErrorCode = "invalid_credentials"
	ErrorCodeInvalidAmount       ErrorCode = "invalid_amount"
	ErrorCodeSameAccount         ErrorCode = "same_account"
	ErrorCodeInvalidRequest      ErrorCode = "invalid_request"
	ErrorCodeInternalError       ErrorCode = "internal_error"
	ErrorCodeRequestInProgress   ErrorCode = "request_in_progress"
)

// HealthStatus defines model for HealthResponse.Status.
type HealthStatus string

// Defines values for HealthStatus.
const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error   ErrorCode `json:"error"`
	Message string    `json:"message"`
}

// MessageResponse defines model for MessageResponse.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status HealthStatus `json:"status"`
}

// SignupRequest defines model for SignupRequest.
type SignupRequest struct {
	Balance   *decimal.Decimal `json:"balance,omitempty"`
	Username  string           `json:"username"`
	Password  string           `json:"password"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Address   string           `json:"address"`
	Birthday  string           `json:"birthday"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TransferRequest defines model for TransferRequest.
type TransferRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	SenderUsername   string          `json:"senderUsername"`
	ReceiverUsername string          `json:"receiverUsername"`
}

// BalanceResponse defines model for BalanceResponse.
type BalanceResponse struct {
	Balance json.Number `json:"balance"`
}

// User defines model for User.
type User struct {
	CreatedAt        time.Time   `json:"createdAt"`
	ExpiryDate       time.Time   `json:"expiryDate"`
	Username         string      `json:"username"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	Address          string      `json:"address"`
	Birthday         string      `json:"birthday"`
	CreditCardNumber string      `json:"creditCardNumber"`
	Cvv              string      `json:"cvv"`
	Balance          json.Number `json:"balance"`
	ID               uuid.UUID   `json:"id"`
}

// UserProfile defines model for UserProfile.
type UserProfile struct {
	Username         string    `json:"username"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Address          string    `json:"address"`
	Birthday         string    `json:"birthday"`
	CreditCardNumber string    `json:"creditCardNumber"`
	ID               uuid.UUID `json:"id"`
}

// Cardholder defines model for Cardholder.
type Cardholder struct {
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Birthday         string    `json:"birthday"`
	Username         string    `json:"username"`
	CreditCardNumber string    `json:"creditCardNumber"`
	ID               uuid.UUID `json:"id"`
}

// CardInfo defines model for CardInfo.
type CardInfo struct {
	Cvv        string `json:"cvv"`
	ExpiryDate string `json:"expiryDate"`
	Name       string `json:"name"`
	CardNumber string `json:"cardNumber"`
	Balance    string `json:"balance"`
}

// Transaction defines model for Transaction.
type Transaction struct {
	Date               time.Time   `json:"date"`
	SenderUsername     string      `json:"senderUsername"`
	SenderName         string      `json:"senderName"`
	SenderCardNumber   string      `json:"senderCardNumber"`
	ReceiverUsername   string      `json:"receiverUsername"`
	ReceiverName       string      `json:"receiverName"`
	ReceiverCardNumber string      `json:"receiverCardNumber"`
	Amount             json.Number `json:"amount"`
	ID                 uuid.UUID   `json:"id"`
}

// FormattedTransaction defines model for FormattedTransaction.
type FormattedTransaction struct {
	Title  string `json:"title"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

// PostSignupJSONRequestBody defines body for PostSignup for application/json ContentType.
type PostSignupJSONRequestBody = SignupRequest

// PostLoginJSONRequestBody defines body for PostLogin for application/json ContentType.
type PostLoginJSONRequestBody = LoginRequest

// PostTransferJSONRequestBody defines body for PostTransfer for application/json ContentType.
type PostTransferJSONRequestBody = TransferRequest
