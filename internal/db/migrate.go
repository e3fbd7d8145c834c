package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benx421/minibank/internal/db/migrations"
	"github.com/pressly/goose/v3"
)

// Migrate applies all pending schema migrations embedded in the binary.
func (db *DB) Migrate(ctx context.Context) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db.DB, migrations.FS,
		goose.WithLogger(&migrationLogger{logger: db.logger}),
		goose.WithVerbose(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	db.logger.Info("database migrations applied", "count", len(results))
	return nil
}

// migrationLogger routes goose output through the service logger
type migrationLogger struct {
	logger *slog.Logger
}

func (l *migrationLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(migrationMessage(format, v...), "component", "migrations")
}

// Fatalf logs at error level; the caller decides whether to exit.
func (l *migrationLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(migrationMessage(format, v...), "component", "migrations")
}

func migrationMessage(format string, v ...interface{}) string {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	return strings.TrimPrefix(msg, "goose: ")
}
