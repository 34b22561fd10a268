// Package cli defines the Cobra command tree for the sitekit CLI. Each file
// in this package registers one top-level command with the root command.
// Command implementations delegate to internal packages for the actual work
// and only handle flag parsing, output and exit status.
package cli
