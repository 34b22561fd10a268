package probe

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvHost:     "localhost",
		EnvUser:     "root",
		EnvPassword: "hunter2",
		EnvName:     "electronic_storage",
		EnvPort:     "3306",
	}
	cfg := FromEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, Config{
		Host:     "localhost",
		User:     "root",
		Password: "hunter2",
		Database: "electronic_storage",
		Port:     "3306",
	}, cfg)
}

func TestFromEnv_MissingVariables(t *testing.T) {
	for _, missing := range []string{EnvHost, EnvUser, EnvPassword, EnvName, EnvPort} {
		t.Run(missing, func(t *testing.T) {
			cfg := FromEnv(func(k string) (string, bool) {
				if k == missing {
					return "", false
				}
				return "x", true
			})

			fields := map[string]string{
				EnvHost:     cfg.Host,
				EnvUser:     cfg.User,
				EnvPassword: cfg.Password,
				EnvName:     cfg.Database,
				EnvPort:     cfg.Port,
			}
			for k, v := range fields {
				if k == missing {
					assert.Empty(t, v, "%s should be empty", k)
				} else {
					assert.Equal(t, "x", v, "%s should be set", k)
				}
			}
		})
	}
}

func TestFromProcessEnv(t *testing.T) {
	t.Setenv(EnvHost, "from-process")
	assert.Equal(t, "from-process", FromProcessEnv().Host)
}

func TestConfigLogValueHidesPassword(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("connecting", slog.Any("config", Config{Host: "db", Password: "hunter2"}))

	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), "config.password=***")
	assert.Contains(t, buf.String(), "config.host=db")
}
