package handlers

import (
	"fmt"
	"net/http"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/service"
	"github.com/shopspring/decimal"
)

// PostSignup handles POST /signup
func (h *Handler) PostSignup(w http.ResponseWriter, r *http.Request) {
	var req api.PostSignupJSONRequestBody
	if !h.decodeBody(w, r, &req) {
		return
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, err.Error())
		return
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	user, err := h.directory.Signup(r.Context(), service.SignupParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Birthday:  birthday,
		Balance:   balance,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.logger.Info("user signed up", "username", user.Username, "user_id", user.ID)
	h.writeJSON(w, http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
}

// PostLogin handles POST /login
func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	var req api.PostLoginJSONRequestBody
	if !h.decodeBody(w, r, &req) {
		return
	}

	if _, err := h.directory.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		// Unknown usernames are a bad request on login rather than a missing resource.
		if svcErr := extractServiceError(err); svcErr != nil && svcErr.Code == service.ErrCodeUserNotFound {
			h.writeError(w, http.StatusBadRequest, api.ErrorCodeUserNotFound, svcErr.Message)
			return
		}
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Login successful"})
}

// GetUsers handles GET /users
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.ListUsers(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := make([]api.User, 0, len(users))
	for i := range users {
		resp = append(resp, toAPIUser(&users[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// DeleteUsers handles DELETE /users
func (h *Handler) DeleteUsers(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.directory.PurgeUsers(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.logger.Warn("all users deleted", "count", deleted)
	h.writeJSON(w, http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("All users have been deleted (%d).", deleted)})
}

// GetUser handles GET /users/{username}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, username string) {
	profile, err := h.query.Profile(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, api.UserProfile{
		ID:               profile.ID,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		Address:          profile.Address,
		Birthday:         profile.Birthday,
		Username:         profile.Username,
		CreditCardNumber: profile.CreditCardNumber,
	})
}
