package handlers

import (
	"fmt"
	"net/http"

	"github.com/benx421/minibank/internal/api"
)

// PostTransfer handles POST /transfer
func (h *Handler) PostTransfer(w http.ResponseWriter, r *http.Request) {
	var req api.PostTransferJSONRequestBody
	if !h.decodeBody(w, r, &req) {
		return
	}

	txn, err := h.ledger.Transfer(r.Context(), req.SenderUsername, req.ReceiverUsername, req.Amount)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.logger.Info("transfer completed",
		"transaction_id", txn.ID,
		"sender", txn.SenderUsername,
		"receiver", txn.ReceiverUsername,
		"amount", txn.Amount.String(),
	)
	h.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Money transferred successfully"})
}

// GetTransactions handles GET /transactions
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.ledger.ListAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := make([]api.Transaction, 0, len(txns))
	for i := range txns {
		resp = append(resp, toAPITransaction(&txns[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// DeleteTransactions handles DELETE /transactions
func (h *Handler) DeleteTransactions(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.ledger.PurgeTransactions(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.logger.Warn("all transactions deleted", "count", deleted)
	h.writeJSON(w, http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("All transactions deleted successfully (%d).", deleted)})
}

// GetUserTransactions handles GET /transactions/{username}
func (h *Handler) GetUserTransactions(w http.ResponseWriter, r *http.Request, username string) {
	txns, err := h.query.ListTransactions(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toAPIFormattedTransactions(txns))
}

// GetLatestTransactions handles GET /transactions/latest/{username}
func (h *Handler) GetLatestTransactions(w http.ResponseWriter, r *http.Request, username string) {
	txns, err := h.query.LatestTransactions(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toAPIFormattedTransactions(txns))
}
