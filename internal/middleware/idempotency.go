// Package middleware provides HTTP middleware components for the bank API.
package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/minibank/internal/api"
	"github.com/benx421/minibank/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
	maxIdempotencyKeyLen = 255

	// reservationTTL bounds how long a crashed request can hold its key
	reservationTTL = time.Minute
)

// idempotentPaths are the POST endpoints whose successful responses are replayed
var idempotentPaths = []string{
	"/signup",
	"/transfer",
}

// IdempotencyRepository defines the interface for idempotency storage
type IdempotencyRepository interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Reserve(ctx context.Context, key, requestPath string, staleBefore time.Time) (bool, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a signup or transfer is retried
// with the same Idempotency-Key. The key is reserved before the handler runs,
// so concurrent retries execute the request at most once: the losers get the
// stored response, or 409 while the winner is still running. Failed responses
// release the key. Requests without the header are processed normally.
func Idempotency(repo IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get(idempotencyKeyHeader)
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(idempotencyKey) > maxIdempotencyKeyLen {
				writeError(w, logger, http.StatusBadRequest, api.ErrorCodeInvalidRequest,
					fmt.Sprintf("%s must be at most %d characters", idempotencyKeyHeader, maxIdempotencyKeyLen))
				return
			}

			requestPath := normalizeRequestPath(r.URL.Path)
			ctx := r.Context()

			reserved, err := repo.Reserve(ctx, idempotencyKey, requestPath, time.Now().UTC().Add(-reservationTTL))
			if err != nil {
				logger.Error("failed to reserve idempotency key", "error", err, "key", idempotencyKey)
				next.ServeHTTP(w, r)
				return
			}
			if !reserved {
				replayOrReject(w, r, repo, logger, idempotencyKey, requestPath)
				return
			}

			capture := newResponseCapture(w)
			next.ServeHTTP(capture, r)

			// The request context may already be canceled once the client has its answer.
			storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()

			if !shouldCacheResponse(capture.statusCode) {
				if err := repo.Release(storeCtx, idempotencyKey, requestPath); err != nil {
					logger.Error("failed to release idempotency key",
						"error", err,
						"key", idempotencyKey,
					)
				}
				return
			}

			idemKey := &models.IdempotencyKey{
				Key:            idempotencyKey,
				RequestPath:    requestPath,
				ResponseStatus: capture.statusCode,
				ResponseBody:   capture.body.String(),
				CreatedAt:      time.Now().UTC(),
			}
			if err := repo.Store(storeCtx, idemKey); err != nil {
				logger.Error("failed to store idempotency key",
					"error", err,
					"key", idempotencyKey,
				)
			}
		})
	}
}

// replayOrReject answers a request whose key is already taken
func replayOrReject(w http.ResponseWriter, r *http.Request, repo IdempotencyRepository, logger *slog.Logger, key, requestPath string) {
	cached, err := repo.Get(r.Context(), key, requestPath)
	if err != nil {
		logger.Error("failed to check idempotency cache", "error", err, "key", key)
		writeError(w, logger, http.StatusInternalServerError, api.ErrorCodeInternalError, "internal server error")
		return
	}

	if cached == nil || cached.Pending() {
		writeError(w, logger, http.StatusConflict, api.ErrorCodeRequestInProgress,
			"a request with this Idempotency-Key is still being processed")
		return
	}

	logger.Info("replaying idempotent response",
		"key", key,
		"path", requestPath,
		"status", cached.ResponseStatus,
	)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(cached.ResponseStatus)
	//nolint:errcheck // Best effort response writing
	w.Write([]byte(cached.ResponseBody))
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	path := normalizeRequestPath(r.URL.Path)
	for _, p := range idempotentPaths {
		if path == p {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
