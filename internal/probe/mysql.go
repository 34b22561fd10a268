package probe

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"

	"github.com/go-sql-driver/mysql"
)

func init() {
	Register("mysql", func(logger *slog.Logger) Driver { return NewMySQL(logger) })
}

// MySQL connects through github.com/go-sql-driver/mysql.
type MySQL struct {
	logger *slog.Logger
}

// NewMySQL creates a MySQL driver. If logger is nil, a discard logger is used.
func NewMySQL(logger *slog.Logger) *MySQL {
	return &MySQL{logger: orDiscard(logger)}
}

// Name returns "MySQL".
func (d *MySQL) Name() string { return "MySQL" }

// Open connects to the server described by cfg.
func (d *MySQL) Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	mc := mysqlConfig(cfg)
	d.logger.Debug("connecting to mysql", slog.Any("config", cfg), slog.String("addr", mc.Addr))

	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("configuring mysql connection: %w", err)
	}
	return connect(ctx, d.logger, sql.OpenDB(connector))
}

// mysqlConfig maps cfg onto the driver's config. An empty port is left for
// the driver to default to 3306, and an empty host to 127.0.0.1.
func mysqlConfig(cfg Config) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Database
	mc.Net = "tcp"

	switch {
	case cfg.Port == "":
		mc.Addr = cfg.Host
	case cfg.Host == "":
		mc.Addr = net.JoinHostPort("127.0.0.1", cfg.Port)
	default:
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	}
	return mc
}
