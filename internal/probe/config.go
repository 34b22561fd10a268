package probe

import (
	"log/slog"
	"os"
)

// Environment variable names read by FromEnv.
const (
	EnvHost     = "DB_HOST"
	EnvUser     = "DB_USER"
	EnvPassword = "DB_PASSWORD"
	EnvName     = "DB_NAME"
	EnvPort     = "DB_PORT"
)

// Config holds the connection settings. Every field may be empty; drivers
// receive them as is and apply their own defaults.
type Config struct {
	Host     string
	User     string
	Password string
	Database string
	Port     string
}

// FromEnv builds a Config from lookup, typically os.LookupEnv. Absent
// variables become empty strings.
func FromEnv(lookup func(string) (string, bool)) Config {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return Config{
		Host:     get(EnvHost),
		User:     get(EnvUser),
		Password: get(EnvPassword),
		Database: get(EnvName),
		Port:     get(EnvPort),
	}
}

// FromProcessEnv reads the Config from the current process environment.
func FromProcessEnv() Config {
	return FromEnv(os.LookupEnv)
}

// LogValue keeps the password out of structured logs.
func (c Config) LogValue() slog.Value {
	pw := ""
	if c.Password != "" {
		pw = "***"
	}
	return slog.GroupValue(
		slog.String("host", c.Host),
		slog.String("port", c.Port),
		slog.String("user", c.User),
		slog.String("database", c.Database),
		slog.String("password", pw),
	)
}
