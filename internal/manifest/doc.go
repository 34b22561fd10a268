// Package manifest parses and validates package.json files. Validation runs
// the embedded JSON Schema and then checks that the version field is a
// semantic version.
package manifest
