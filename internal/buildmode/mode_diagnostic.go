//go:build diagnostic

package buildmode

// Diagnostic reports whether the binary was built with the "diagnostic" tag.
const Diagnostic = true
