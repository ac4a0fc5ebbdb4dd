// Package buildmode reports which flavor of the CRA Client binary was
// compiled.
//
// Release builds (the default) enforce the localhost target guard during
// configuration resolution. Building with the "diagnostic" tag relaxes that
// guard for development against local servers:
//
//	go build -tags diagnostic ./...
package buildmode
