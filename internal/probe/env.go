package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file loaded when none is configured: one
// directory above the working directory.
const DefaultEnvFile = "../.env"

// LoadEnvFile loads path into the process environment. Variables that are
// already set keep their values. A missing file is not an error; loaded
// reports whether the file was read.
func LoadEnvFile(path string) (loaded bool, err error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("loading env file %s: %w", path, err)
	}
	return true, nil
}

// EnvEntry represents a single key-value pair from a dotenv file.
type EnvEntry struct {
	Key   string
	Value string
}

// ReadEnvFile parses a dotenv file without touching the process environment.
// Entries are sorted by key.
func ReadEnvFile(path string) ([]EnvEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", path, err)
	}

	entries := make([]EnvEntry, 0, len(values))
	for k, v := range values {
		entries = append(entries, EnvEntry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ runes show the first 4 runes + "***".
// Values with fewer than 4 runes are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if r := []rune(value); len(r) >= 4 {
				return string(r[:4]) + "***"
			}
			return "***"
		}
	}
	return value
}
