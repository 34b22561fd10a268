// Package scaffold lays down the fixed website skeleton used by the
// "sitekit scaffold" command: the backend, frontend, database and assets
// directories plus a README.md and package.json copied verbatim from
// embedded assets.
package scaffold
