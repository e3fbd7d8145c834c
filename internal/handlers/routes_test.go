package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/config"
	"github.com/benx421/minibank/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(adminRoutes bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               "3000",
			AllowedOrigins:     []string{"*"},
			EnableAdminRoutes:  adminRoutes,
			EnableRequestCheck: true,
		},
		Database: config.DatabaseConfig{Backend: config.BackendMemory},
		App: config.AppConfig{
			BcryptCost:        4,
			CardValidityYears: 5,
		},
		Logger: config.LoggerConfig{Level: "error"},
	}
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, adminRoutes bool) *testServer {
	t.Helper()
	router, err := NewRouter(repository.NewMemoryStore(), testConfig(adminRoutes), testLogger())
	require.NoError(t, err)
	return &testServer{t: t, handler: router}
}

func (s *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = jsonRequest(method, path, body)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) signup(username, first, last string, balance string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/signup", `{"username":"`+username+`","password":"secret","firstName":"`+first+
		`","lastName":"`+last+`","address":"1 Main St","birthday":"1990-07-04","balance":`+balance+`}`)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *testServer) balance(username string) float64 {
	s.t.Helper()
	rec := s.do(http.MethodGet, "/getUserBalance/"+username, "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	balance, err := decodeJSON[api.BalanceResponse](s.t, rec).Balance.Float64()
	require.NoError(s.t, err)
	return balance
}

func TestRouter_SignupAndLogin(t *testing.T) {
	srv := newTestServer(t, false)
	srv.signup("alice", "Alice", "Smith", "100")

	rec := srv.do(http.MethodPost, "/signup",
		`{"username":"alice","password":"other","firstName":"A","lastName":"S","birthday":"1990-07-04"}`)
	assertErrorResponse(t, rec, http.StatusConflict, api.ErrorCodeUsernameTaken)

	rec = srv.do(http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)
	assertErrorResponse(t, rec, http.StatusUnauthorized, api.ErrorCodeInvalidCredentials)

	rec = srv.do(http.MethodPost, "/login", `{"username":"ghost","password":"secret"}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeUserNotFound)

	rec = srv.do(http.MethodGet, "/users/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeJSON[api.UserProfile](t, rec)
	assert.Equal(t, "7/4/1990", profile.Birthday)
	assert.Len(t, profile.CreditCardNumber, 16)
	assert.NotContains(t, rec.Body.String(), "secret")

	rec = srv.do(http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]api.User](t, rec), 1)

	rec = srv.do(http.MethodPost, "/signup",
		`{"username":"bob","password":"secret","firstName":"Bob","lastName":"Jones","birthday":"1990-07-04","balance":10.005}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeInvalidAmount)
}

func TestRouter_TransferFlow(t *testing.T) {
	srv := newTestServer(t, false)
	srv.signup("alice", "Alice", "Smith", "100")
	srv.signup("bob", "Bob", "Jones", "20")

	rec := srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"bob","amount":30}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Money transferred successfully", decodeJSON[api.MessageResponse](t, rec).Message)

	assert.InDelta(t, 70.0, srv.balance("alice"), 0.001)
	assert.InDelta(t, 50.0, srv.balance("bob"), 0.001)

	rec = srv.do(http.MethodPost, "/transfer", `{"senderUsername":"bob","receiverUsername":"alice","amount":1000}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeInsufficientBalance)

	rec = srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"bob","amount":0}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeInvalidAmount)

	rec = srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"alice","amount":5}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeSameAccount)

	rec = srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"ghost","amount":5}`)
	assertErrorResponse(t, rec, http.StatusNotFound, api.ErrorCodeUserNotFound)

	assert.InDelta(t, 70.0, srv.balance("alice"), 0.001)
	assert.InDelta(t, 50.0, srv.balance("bob"), 0.001)

	rec = srv.do(http.MethodGet, "/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	ledger := decodeJSON[[]api.Transaction](t, rec)
	require.Len(t, ledger, 1)
	assert.Equal(t, "Alice Smith", ledger[0].SenderName)
	assert.Equal(t, "Bob Jones", ledger[0].ReceiverName)

	rec = srv.do(http.MethodGet, "/transactions/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeJSON[[]api.FormattedTransaction](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, "Outgoing", history[0].Title)
	assert.Equal(t, "Bob Jones", history[0].Name)
	assert.Equal(t, "30", history[0].Amount)

	rec = srv.do(http.MethodGet, "/transactions/latest/bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	latest := decodeJSON[[]api.FormattedTransaction](t, rec)
	require.Len(t, latest, 1)
	assert.Equal(t, "Incoming", latest[0].Title)
	assert.Equal(t, "Alice Smith", latest[0].Name)

	rec = srv.do(http.MethodGet, "/transactions/ghost", "")
	assertErrorResponse(t, rec, http.StatusNotFound, api.ErrorCodeUserNotFound)
}

func TestRouter_LatestTransactionsCapped(t *testing.T) {
	srv := newTestServer(t, false)
	srv.signup("alice", "Alice", "Smith", "100")
	srv.signup("bob", "Bob", "Jones", "0")

	for i := 0; i < 7; i++ {
		rec := srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"bob","amount":1}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := srv.do(http.MethodGet, "/transactions/latest/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]api.FormattedTransaction](t, rec), 5)

	rec = srv.do(http.MethodGet, "/transactions/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]api.FormattedTransaction](t, rec), 7)
}

func TestRouter_IdempotentTransferReplay(t *testing.T) {
	srv := newTestServer(t, false)
	srv.signup("alice", "Alice", "Smith", "100")
	srv.signup("bob", "Bob", "Jones", "0")

	body := `{"senderUsername":"alice","receiverUsername":"bob","amount":40}`
	first := srv.do(http.MethodPost, "/transfer", body, "Idempotency-Key", "transfer-1")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotent-Replayed"))

	second := srv.do(http.MethodPost, "/transfer", body, "Idempotency-Key", "transfer-1")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotent-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	assert.InDelta(t, 60.0, srv.balance("alice"), 0.001)
	assert.InDelta(t, 40.0, srv.balance("bob"), 0.001)
}

func TestRouter_CardLookups(t *testing.T) {
	srv := newTestServer(t, false)
	srv.signup("alice", "Alice", "Smith", "1234.5")

	rec := srv.do(http.MethodGet, "/getCreditCardInfo/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeJSON[api.CardInfo](t, rec)
	assert.Equal(t, "Alice Smith", info.Name)
	assert.Equal(t, "1,234.5", info.Balance)
	assert.Len(t, info.Cvv, 3)
	assert.Regexp(t, `^\d{4} \d{4} \d{4} \d{4}$`, info.CardNumber)
	assert.Regexp(t, `^\d{1,2}/\d{2}$`, info.ExpiryDate)

	digits := strings.ReplaceAll(info.CardNumber, " ", "")
	rec = srv.do(http.MethodGet, "/cardholders/"+digits, "")
	require.Equal(t, http.StatusOK, rec.Code)
	holder := decodeJSON[api.Cardholder](t, rec)
	assert.Equal(t, "alice", holder.Username)
	assert.Equal(t, info.CardNumber, holder.CreditCardNumber)

	rec = srv.do(http.MethodGet, "/cardholders/4111111111111111", "")
	assertErrorResponse(t, rec, http.StatusNotFound, api.ErrorCodeCardNotFound)

	rec = srv.do(http.MethodGet, "/cardholders/abc", "")
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeInvalidRequest)
}

func TestRouter_RequestValidation(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"bob"}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeInvalidRequest)

	rec = srv.do(http.MethodPost, "/signup", `{"username":"alice"}`)
	assertErrorResponse(t, rec, http.StatusBadRequest, api.ErrorCodeInvalidRequest)
}

func TestRouter_AdminRoutes(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		srv := newTestServer(t, false)
		srv.signup("alice", "Alice", "Smith", "10")

		rec := srv.do(http.MethodDelete, "/users", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		rec = srv.do(http.MethodDelete, "/transactions", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		rec = srv.do(http.MethodGet, "/users", "")
		assert.Len(t, decodeJSON[[]api.User](t, rec), 1)
	})

	t.Run("enabled", func(t *testing.T) {
		srv := newTestServer(t, true)
		srv.signup("alice", "Alice", "Smith", "10")
		srv.signup("bob", "Bob", "Jones", "0")
		rec := srv.do(http.MethodPost, "/transfer", `{"senderUsername":"alice","receiverUsername":"bob","amount":5}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = srv.do(http.MethodDelete, "/transactions", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "All transactions deleted successfully (1).", decodeJSON[api.MessageResponse](t, rec).Message)

		rec = srv.do(http.MethodDelete, "/users", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "All users have been deleted (2).", decodeJSON[api.MessageResponse](t, rec).Message)

		rec = srv.do(http.MethodGet, "/users", "")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestRouter_HealthAndDocs(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.Healthy, decodeJSON[api.HealthResponse](t, rec).Status)

	rec = srv.do(http.MethodGet, "/docs/openapi", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Minibank API")
}

func TestRouter_CORSPreflight(t *testing.T) {
	tests := []struct {
		name           string
		requestHeaders string
		wantAllowed    bool
	}{
		{"allowed headers", "content-type,idempotency-key", true},
		{"unlisted header", "content-type,x-custom", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, false)

			rec := srv.do(http.MethodOptions, "/transfer", "",
				"Origin", "http://localhost:5173",
				"Access-Control-Request-Method", http.MethodPost,
				"Access-Control-Request-Headers", tt.requestHeaders,
			)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			if !tt.wantAllowed {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
				return
			}
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			assert.Equal(t, "content-type,idempotency-key", rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}
