package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/service"
	"github.com/benx421/minibank/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCardholder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		query := mocks.NewMockQuery(t)
		handler := NewHandler(nil, nil, query, nil, testLogger())

		query.On("Cardholder", mock.Anything, "4000001234567899").Return(&service.CardholderView{
			ID:               uuid.New(),
			Name:             "Alice Smith",
			Address:          "1 Main St",
			Birthday:         "7/4/1990",
			Username:         "alice",
			CreditCardNumber: "4000 0012 3456 7899",
		}, nil)

		rec := httptest.NewRecorder()
		handler.GetCardholder(rec, httptest.NewRequest(http.MethodGet, "/cardholders/4000001234567899", nil), "4000001234567899")

		assert.Equal(t, http.StatusOK, rec.Code)
		holder := decodeJSON[api.Cardholder](t, rec)
		assert.Equal(t, "Alice Smith", holder.Name)
		assert.Equal(t, "4000 0012 3456 7899", holder.CreditCardNumber)
	})

	t.Run("unknown card", func(t *testing.T) {
		query := mocks.NewMockQuery(t)
		handler := NewHandler(nil, nil, query, nil, testLogger())
		query.On("Cardholder", mock.Anything, "4111111111111111").
			Return(nil, &service.ServiceError{Code: service.ErrCodeCardNotFound, Message: "card not found"})

		rec := httptest.NewRecorder()
		handler.GetCardholder(rec, httptest.NewRequest(http.MethodGet, "/cardholders/4111111111111111", nil), "4111111111111111")

		assertErrorResponse(t, rec, http.StatusNotFound, api.ErrorCodeCardNotFound)
	})
}

func TestGetUserBalance(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		query := mocks.NewMockQuery(t)
		handler := NewHandler(nil, nil, query, nil, testLogger())
		query.On("Balance", mock.Anything, "alice").Return(decimal.RequireFromString("70.25"), nil)

		rec := httptest.NewRecorder()
		handler.GetUserBalance(rec, httptest.NewRequest(http.MethodGet, "/getUserBalance/alice", nil), "alice")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":70.25}`, rec.Body.String())
	})

	t.Run("large balance keeps every digit", func(t *testing.T) {
		query := mocks.NewMockQuery(t)
		handler := NewHandler(nil, nil, query, nil, testLogger())
		query.On("Balance", mock.Anything, "alice").Return(decimal.RequireFromString("123456789012345.67"), nil)

		rec := httptest.NewRecorder()
		handler.GetUserBalance(rec, httptest.NewRequest(http.MethodGet, "/getUserBalance/alice", nil), "alice")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "{\"balance\":123456789012345.67}\n", rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		query := mocks.NewMockQuery(t)
		handler := NewHandler(nil, nil, query, nil, testLogger())
		query.On("Balance", mock.Anything, "alice").Return(decimal.Zero, errors.New("boom"))

		rec := httptest.NewRecorder()
		handler.GetUserBalance(rec, httptest.NewRequest(http.MethodGet, "/getUserBalance/alice", nil), "alice")

		assertErrorResponse(t, rec, http.StatusInternalServerError, api.ErrorCodeInternalError)
	})
}

func TestGetCreditCardInfo(t *testing.T) {
	query := mocks.NewMockQuery(t)
	handler := NewHandler(nil, nil, query, nil, testLogger())
	query.On("CreditCardInfo", mock.Anything, "alice").Return(&service.CardInfoView{
		CVV:        "123",
		ExpiryDate: "3/29",
		Name:       "Alice Smith",
		CardNumber: "4000 0012 3456 7899",
		Balance:    "1,234.5",
	}, nil)

	rec := httptest.NewRecorder()
	handler.GetCreditCardInfo(rec, httptest.NewRequest(http.MethodGet, "/getCreditCardInfo/alice", nil), "alice")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"cvv":"123","expiryDate":"3/29","name":"Alice Smith","cardNumber":"4000 0012 3456 7899","balance":"1,234.5"}`,
		rec.Body.String())
}
