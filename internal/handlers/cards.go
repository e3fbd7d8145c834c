package handlers

import (
	"net/http"

	"github.com/benx421/minibank/internal/api"
)

// GetCardholder handles GET /cardholders/{cardNumber}
func (h *Handler) GetCardholder(w http.ResponseWriter, r *http.Request, cardNumber string) {
	holder, err := h.query.Cardholder(r.Context(), cardNumber)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.Cardholder{
		ID:               holder.ID,
		Name:             holder.Name,
		Address:          holder.Address,
		Birthday:         holder.Birthday,
		Username:         holder.Username,
		CreditCardNumber: holder.CreditCardNumber,
	})
}

// GetUserBalance handles GET /getUserBalance/{username}
func (h *Handler) GetUserBalance(w http.ResponseWriter, r *http.Request, username string) {
	balance, err := h.query.Balance(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.BalanceResponse{Balance: jsonAmount(balance)})
}

// GetCreditCardInfo handles GET /getCreditCardInfo/{username}
func (h *Handler) GetCreditCardInfo(w http.ResponseWriter, r *http.Request, username string) {
	info, err := h.query.CreditCardInfo(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.CardInfo{
		Cvv:        info.CVV,
		ExpiryDate: info.ExpiryDate,
		Name:       info.Name,
		CardNumber: info.CardNumber,
		Balance:    info.Balance,
	})
}
