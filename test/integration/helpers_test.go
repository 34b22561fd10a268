//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sitekit-labs/sitekit/internal/probe"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // SITEKIT_HOME, the settings directory
	ProjectDir string // where the skeleton is scaffolded
	EnvFile    string // dotenv file one level above ProjectDir
}

// setupTestEnv creates an isolated workspace laid out like a real project:
// <root>/.env next to <root>/site, so ../.env resolves from the project.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: filepath.Join(root, "site"),
		EnvFile:    filepath.Join(root, ".env"),
	}
	if err := os.MkdirAll(env.ProjectDir, 0755); err != nil {
		t.Fatalf("creating project dir: %v", err)
	}

	t.Setenv("SITEKIT_HOME", env.HomeDir)
	for _, key := range []string{probe.EnvHost, probe.EnvUser, probe.EnvPassword, probe.EnvName, probe.EnvPort} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	return env
}

// chdir switches the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	t.Chdir(dir)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
