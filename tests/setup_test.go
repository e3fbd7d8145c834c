//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benx421/minibank/internal/config"
	"github.com/benx421/minibank/internal/db"
	"github.com/benx421/minibank/internal/handlers"
	"github.com/benx421/minibank/internal/repository"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	t        *testing.T
}

// SetupTest creates a new test server backed by PostgreSQL with empty tables.
// The test is skipped when DB_URI does not point at a reachable database.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	cfg.Database.Backend = config.BackendPostgres
	cfg.Server.EnableAdminRoutes = true
	cfg.App.BcryptCost = 4

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	require.NoError(t, database.Migrate(ctx), "failed to migrate database")

	resetTestData(t, database)

	router, err := handlers.NewRouter(repository.NewPostgresStore(database), cfg, logger)
	require.NoError(t, err)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Database: database,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions, idempotency_keys, users;
	`)
	require.NoError(t, err, "failed to reset test data")
}

func (ts *TestServer) post(t *testing.T, path string, body map[string]any, idempotencyKey string) *http.Response {
	t.Helper()

	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, ts.URL(path), bytes.NewReader(jsonBody))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// Signup sends a POST request to create a user.
func (ts *TestServer) Signup(t *testing.T, username string, balance float64) *http.Response {
	t.Helper()

	return ts.post(t, "/signup", map[string]any{
		"username":  username,
		"password":  "secret",
		"firstName": username,
		"lastName":  "Tester",
		"address":   "1 Main St",
		"birthday":  "1990-07-04",
		"balance":   balance,
	}, "")
}

// MustSignup creates a user and fails the test unless it was created.
func (ts *TestServer) MustSignup(t *testing.T, username string, balance float64) {
	t.Helper()

	resp := ts.Signup(t, username, balance)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// Transfer sends a POST request to move money between two users.
func (ts *TestServer) Transfer(t *testing.T, sender, receiver string, amount float64, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.post(t, "/transfer", map[string]any{
		"senderUsername":   sender,
		"receiverUsername": receiver,
		"amount":           amount,
	}, idempotencyKey)
}

// Balance fetches a user's current balance.
func (ts *TestServer) Balance(t *testing.T, username string) float64 {
	t.Helper()

	resp, err := http.Get(ts.URL("/getUserBalance/" + username))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Balance
}

// LedgerSize returns the number of recorded transactions.
func (ts *TestServer) LedgerSize(t *testing.T) int {
	t.Helper()

	resp, err := http.Get(ts.URL("/transactions"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return len(body)
}
