// Package diag provides the startup diagnostics primitives: unix-second
// timestamps for log entries, per-run identifiers, and the append-only
// startup log file under the per-user config directory.
package diag

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Timestamp returns the current time as unix seconds for diagnostic
// entries, "0" when the clock reads before the epoch.
func Timestamp() string {
	seconds := time.Now().Unix()
	if seconds < 0 {
		return "0"
	}

	return strconv.FormatInt(seconds, 10)
}

// NewRunID returns a time-sortable unique identifier for one process run,
// attached to every structured log entry the run emits.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
