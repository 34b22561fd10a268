package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const scaffoldPackage = `{
  "name": "my-website",
  "version": "1.0.0",
  "main": "backend/app.js",
  "scripts": {
    "start": "node backend/app.js"
  }
}
`

func TestValidate_Valid(t *testing.T) {
	result, err := Validate([]byte(scaffoldPackage))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
		t.Fatal("expected scaffold package.json to be valid")
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
		path    string
	}{
		{"missing name", `{"version": "1.0.0"}`, "required", ""},
		{"uppercase name", `{"name": "My-Website", "version": "1.0.0"}`, "pattern", "/name"},
		{"numeric version", `{"name": "site", "version": 1}`, "type", "/version"},
		{"script not string", `{"name": "site", "version": "1.0.0", "scripts": {"start": 3}}`, "type", "/scripts/start"},
		{"non-semver version", `{"name": "site", "version": "one"}`, "semver", "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid, got valid")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword && issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with keyword=%s path=%q in %+v", tt.keyword, tt.path, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"name": `)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	os.WriteFile(path, []byte(scaffoldPackage), 0644)

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues %+v", result.Issues)
	}
}

func TestValidateFile_Missing(t *testing.T) {
	if _, err := ValidateFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	os.WriteFile(path, []byte(scaffoldPackage), 0644)

	pkg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if pkg.Name != "my-website" || pkg.Version != "1.0.0" || pkg.Main != "backend/app.js" {
		t.Errorf("Parse() = %+v", pkg)
	}
	if pkg.Scripts["start"] != "node backend/app.js" {
		t.Errorf("scripts.start = %q", pkg.Scripts["start"])
	}
}
