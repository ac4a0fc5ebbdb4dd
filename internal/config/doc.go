// Package config resolves the CRA Client runtime configuration.
//
// Settings are assembled from layered sources in the following priority
// order (earlier sources win):
//  1. CRA_CLIENT_* process environment variables
//  2. client.env files, searched in the working directory, the executable
//     directory, and the per-user config directory; later files overwrite
//     earlier ones key by key
//  3. Built-in defaults
//
// The main entry point is [Resolve], which performs the first-run default
// file creation and the legacy default migration before reading any value,
// then validates everything into a [RuntimeConfig] or a single descriptive
// error.
package config
