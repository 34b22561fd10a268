//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sitekit-labs/sitekit/internal/manifest"
	"github.com/sitekit-labs/sitekit/internal/probe"
	"github.com/sitekit-labs/sitekit/internal/scaffold"
)

// TestE2E_ScaffoldThenProbe walks the workflow a developer follows: scaffold
// a project, check it, then smoke-test the database named in ../.env.
func TestE2E_ScaffoldThenProbe(t *testing.T) {
	env := setupTestEnv(t)
	chdir(t, env.ProjectDir)

	var out bytes.Buffer
	if _, err := scaffold.Run(&out, "."); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	report, err := scaffold.Check(&bytes.Buffer{}, ".")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("fresh scaffold is not healthy: %+v", report)
	}

	result, err := manifest.ValidateFile("package.json")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !result.Valid {
		t.Fatalf("package.json invalid: %+v", result.Issues)
	}

	dbPath := filepath.Join(env.ProjectDir, "database", "site.db")
	writeFile(t, env.EnvFile, "DB_NAME="+dbPath+"\n")

	loaded, err := probe.LoadEnvFile(probe.DefaultEnvFile)
	if err != nil || !loaded {
		t.Fatalf("loading ../.env: loaded=%v err=%v", loaded, err)
	}

	d, err := probe.NewDriver("sqlite", nil)
	if err != nil {
		t.Fatalf("driver: %v", err)
	}

	out.Reset()
	outcome := probe.Run(context.Background(), &out, d, probe.FromProcessEnv())
	if !outcome.OK() {
		t.Fatalf("probe outcome: %+v\n%s", outcome, out.String())
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("sqlite file not created under database/: %v", err)
	}
}

// TestE2E_ScaffoldIsRepeatable runs the scaffolder twice over a tree the
// developer already edited.
func TestE2E_ScaffoldIsRepeatable(t *testing.T) {
	env := setupTestEnv(t)
	chdir(t, env.ProjectDir)

	if _, err := scaffold.Run(&bytes.Buffer{}, "."); err != nil {
		t.Fatalf("first scaffold: %v", err)
	}
	writeFile(t, filepath.Join("frontend", "index.html"), "<h1>shop</h1>\n")
	writeFile(t, "README.md", "# Edited\n")

	if _, err := scaffold.Run(&bytes.Buffer{}, "."); err != nil {
		t.Fatalf("second scaffold: %v", err)
	}

	if data, _ := os.ReadFile(filepath.Join("frontend", "index.html")); string(data) != "<h1>shop</h1>\n" {
		t.Errorf("frontend/index.html changed: %q", data)
	}
	if data, _ := os.ReadFile("README.md"); strings.Contains(string(data), "Edited") {
		t.Errorf("README.md was not overwritten: %q", data)
	}
}

// TestE2E_MySQL probes a live MySQL server when SITEKIT_TEST_MYSQL_HOST is set.
func TestE2E_MySQL(t *testing.T) {
	host := os.Getenv("SITEKIT_TEST_MYSQL_HOST")
	if host == "" {
		t.Skip("SITEKIT_TEST_MYSQL_HOST not set")
	}
	cfg := probe.Config{
		Host:     host,
		Port:     os.Getenv("SITEKIT_TEST_MYSQL_PORT"),
		User:     os.Getenv("SITEKIT_TEST_MYSQL_USER"),
		Password: os.Getenv("SITEKIT_TEST_MYSQL_PASSWORD"),
		Database: os.Getenv("SITEKIT_TEST_MYSQL_DATABASE"),
	}

	d, err := probe.NewDriver("mysql", nil)
	if err != nil {
		t.Fatalf("driver: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out bytes.Buffer
	outcome := probe.Run(ctx, &out, d, cfg)
	if !outcome.OK() {
		t.Fatalf("probe outcome: %+v\n%s", outcome, out.String())
	}
	want := "Connection to the database is successful!\nMySQL connection is closed.\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
