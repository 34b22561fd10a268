// Package probe is a database connectivity smoke test. It reads DB_HOST,
// DB_USER, DB_PASSWORD, DB_NAME and DB_PORT (usually from a dotenv file),
// opens one connection through a registered driver, reports whether the
// connection is live, and always releases it before returning.
//
// Failures are reported on the output writer rather than returned: the probe
// is meant to be read by a person, not consumed by automation.
package probe
