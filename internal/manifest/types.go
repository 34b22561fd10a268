package manifest

// Package holds the package.json fields sitekit understands.
type Package struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Main    string            `json:"main,omitempty"`
	Scripts map[string]string `json:"scripts,omitempty"`
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/scripts/start")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}
