package probe

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

func init() {
	Register("sqlite", func(logger *slog.Logger) Driver { return NewSQLite(logger) })
}

// SQLite opens a database file named by Config.Database. The network fields
// are ignored.
type SQLite struct {
	logger *slog.Logger
}

// NewSQLite creates a SQLite driver. If logger is nil, a discard logger is used.
func NewSQLite(logger *slog.Logger) *SQLite {
	return &SQLite{logger: orDiscard(logger)}
}

// Name returns "SQLite".
func (d *SQLite) Name() string { return "SQLite" }

// Open opens the database file at cfg.Database.
func (d *SQLite) Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	d.logger.Debug("opening sqlite database", slog.String("path", cfg.Database))

	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	return connect(ctx, d.logger, db)
}
