package probe

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

func init() {
	Register("postgres", func(logger *slog.Logger) Driver { return NewPostgres(logger) })
}

// Postgres connects through pgx's database/sql driver.
type Postgres struct {
	logger *slog.Logger
}

// NewPostgres creates a PostgreSQL driver. If logger is nil, a discard logger is used.
func NewPostgres(logger *slog.Logger) *Postgres {
	return &Postgres{logger: orDiscard(logger)}
}

// Name returns "PostgreSQL".
func (d *Postgres) Name() string { return "PostgreSQL" }

// Open connects to the server described by cfg.
func (d *Postgres) Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	d.logger.Debug("connecting to postgres", slog.Any("config", cfg))

	db, err := sql.Open("pgx", buildPostgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	return connect(ctx, d.logger, db)
}

// buildPostgresDSN builds a key=value connection string. Empty fields are
// omitted so pgx falls back to its defaults (PG* variables, then localhost:5432).
func buildPostgresDSN(cfg Config) string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+quoteDSNValue(value))
		}
	}
	add("host", cfg.Host)
	add("port", cfg.Port)
	add("dbname", cfg.Database)
	add("user", cfg.User)
	add("password", cfg.Password)
	return strings.Join(parts, " ")
}

// quoteDSNValue single-quotes values containing spaces, quotes or
// backslashes, escaping the latter two.
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
