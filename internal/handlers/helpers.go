package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/service"
	"github.com/shopspring/decimal"
)

// birthdayLayouts are the accepted signup birthday formats
var birthdayLayouts = []string{time.DateOnly, time.RFC3339}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	h.writeJSON(w, status, api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// writeServiceError maps err to a status code and error body. Unexpected
// errors are logged and reported without details.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		h.writeError(w, http.StatusInternalServerError, api.ErrorCodeInternalError, "internal server error")
		return
	}

	h.writeError(w, statusForCode(svcErr.Code), mapServiceErrorToCode(svcErr.Code), svcErr.Message)
}

// writeBindError reports a path parameter that could not be bound
func (h *Handler) writeBindError(w http.ResponseWriter, _ *http.Request, err error) {
	h.writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, err.Error())
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeUsernameTaken:
		return http.StatusConflict
	case service.ErrCodeUserNotFound, service.ErrCodeCardNotFound:
		return http.StatusNotFound
	case service.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.ErrCodeInsufficientBalance,
		service.ErrCodeInvalidAmount,
		service.ErrCodeSameAccount,
		service.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeUserNotFound:
		return api.ErrorCodeUserNotFound
	case service.ErrCodeCardNotFound:
		return api.ErrorCodeCardNotFound
	case service.ErrCodeUsernameTaken:
		return api.ErrorCodeUsernameTaken
	case service.ErrCodeInsufficientBalance:
		return api.ErrorCodeInsufficientBalance
	case service.ErrCodeInvalidCredentials:
		return api.ErrorCodeInvalidCredentials
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeSameAccount:
		return api.ErrorCodeSameAccount
	case service.ErrCodeInvalidRequest:
		return api.ErrorCodeInvalidRequest
	default:
		return api.ErrorCodeInternalError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func parseBirthday(value string) (time.Time, error) {
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid birthday %q: expected YYYY-MM-DD", value)
}

// jsonAmount encodes an amount as an exact JSON number
func jsonAmount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:               u.ID,
		Username:         u.Username,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Address:          u.Address,
		Birthday:         u.Birthday.Format(time.DateOnly),
		Balance:          jsonAmount(u.Balance),
		CreditCardNumber: u.CreditCardNumber,
		Cvv:              u.CVV,
		ExpiryDate:       u.ExpiryDate,
		CreatedAt:        u.CreatedAt,
	}
}

func toAPITransaction(t *models.Transaction) api.Transaction {
	return api.Transaction{
		ID:                 t.ID,
		SenderUsername:     t.SenderUsername,
		SenderName:         t.SenderName,
		SenderCardNumber:   t.SenderCardNumber,
		ReceiverUsername:   t.ReceiverUsername,
		ReceiverName:       t.ReceiverName,
		ReceiverCardNumber: t.ReceiverCardNumber,
		Amount:             jsonAmount(t.Amount),
		Date:               t.Date,
	}
}

func toAPIFormattedTransactions(txns []service.FormattedTransaction) []api.FormattedTransaction {
	out := make([]api.FormattedTransaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, api.FormattedTransaction{
			Title:  t.Title,
			Name:   t.Name,
			Amount: t.Amount,
			Date:   t.Date,
		})
	}
	return out
}
