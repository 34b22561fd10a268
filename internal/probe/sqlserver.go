package probe

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"

	mssql "github.com/microsoft/go-mssqldb"
)

func init() {
	Register("sqlserver", func(logger *slog.Logger) Driver { return NewSQLServer(logger) })
}

// SQLServer connects to Microsoft SQL Server through go-mssqldb.
type SQLServer struct {
	logger *slog.Logger
}

// NewSQLServer creates a SQL Server driver. If logger is nil, a discard logger is used.
func NewSQLServer(logger *slog.Logger) *SQLServer {
	return &SQLServer{logger: orDiscard(logger)}
}

// Name returns "SQL Server".
func (d *SQLServer) Name() string { return "SQL Server" }

// Open connects to the server described by cfg.
func (d *SQLServer) Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	d.logger.Debug("connecting to sqlserver", slog.Any("config", cfg))

	connector, err := mssql.NewConnector(buildSQLServerURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("configuring sqlserver connection: %w", err)
	}
	return connect(ctx, d.logger, sql.OpenDB(connector))
}

// buildSQLServerURL builds a sqlserver:// URL. Empty fields are left out so
// go-mssqldb applies its own defaults.
func buildSQLServerURL(cfg Config) string {
	u := &url.URL{Scheme: "sqlserver", Host: cfg.Host}
	if cfg.Port != "" {
		u.Host = net.JoinHostPort(cfg.Host, cfg.Port)
	}
	switch {
	case cfg.Password != "":
		u.User = url.UserPassword(cfg.User, cfg.Password)
	case cfg.User != "":
		u.User = url.User(cfg.User)
	}
	if cfg.Database != "" {
		u.RawQuery = url.Values{"database": {cfg.Database}}.Encode()
	}
	return u.String()
}
