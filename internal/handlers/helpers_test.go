package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/minibank/internal/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, code api.ErrorCode) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	resp := decodeJSON[api.ErrorResponse](t, rec)
	assert.Equal(t, code, resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code   string
		status int
		apiErr api.ErrorCode
	}{
		{"user_not_found", http.StatusNotFound, api.ErrorCodeUserNotFound},
		{"card_not_found", http.StatusNotFound, api.ErrorCodeCardNotFound},
		{"username_taken", http.StatusConflict, api.ErrorCodeUsernameTaken},
		{"insufficient_balance", http.StatusBadRequest, api.ErrorCodeInsufficientBalance},
		{"invalid_credentials", http.StatusUnauthorized, api.ErrorCodeInvalidCredentials},
		{"invalid_amount", http.StatusBadRequest, api.ErrorCodeInvalidAmount},
		{"same_account", http.StatusBadRequest, api.ErrorCodeSameAccount},
		{"invalid_request", http.StatusBadRequest, api.ErrorCodeInvalidRequest},
		{"internal_error", http.StatusInternalServerError, api.ErrorCodeInternalError},
		{"something_else", http.StatusInternalServerError, api.ErrorCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, statusForCode(tt.code))
			assert.Equal(t, tt.apiErr, mapServiceErrorToCode(tt.code))
		})
	}
}

func TestParseBirthday(t *testing.T) {
	d, err := parseBirthday("1990-07-04")
	require.NoError(t, err)
	assert.Equal(t, "1990-07-04", d.Format("2006-01-02"))

	d, err = parseBirthday("1990-07-04T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Day())

	_, err = parseBirthday("07/04/1990")
	assert.Error(t, err)
}

func TestJSONAmount(t *testing.T) {
	tests := []struct {
		in   string
		want json.Number
	}{
		{"30", "30"},
		{"100.50", "100.5"},
		{"0.01", "0.01"},
		{"123456789012345.67", "123456789012345.67"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonAmount(decimal.RequireFromString(tt.in)))
		})
	}
}
