package probe

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// DefaultDriver is the driver used when none is configured.
const DefaultDriver = "mysql"

// Driver opens a connection described by a Config.
type Driver interface {
	// Name is the human-readable server name used in output, e.g. "MySQL".
	Name() string
	// Open returns a handle with an established connection, or an error.
	// It never returns both.
	Open(ctx context.Context, cfg Config) (*sql.DB, error)
}

// Factory builds a Driver. A nil logger means discard.
type Factory func(logger *slog.Logger) Driver

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a driver factory under name. Later registrations replace
// earlier ones.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// NewDriver returns the driver registered under name.
func NewDriver(name string, logger *slog.Logger) (Driver, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownDriverError{Name: name, Available: Drivers()}
	}
	return factory(logger), nil
}

// Drivers returns all registered driver names (sorted).
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownDriverError is returned when an unregistered driver is requested.
type UnknownDriverError struct {
	Name      string
	Available []string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown driver %q (available: %v)", e.Name, e.Available)
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// connect pings db and closes it again if the ping fails, so callers see
// either a usable handle or an error.
func connect(ctx context.Context, logger *slog.Logger, db *sql.DB) (*sql.DB, error) {
	if err := db.PingContext(ctx); err != nil {
		logger.Debug("connect failed, releasing handle", slog.Any("error", err))
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
