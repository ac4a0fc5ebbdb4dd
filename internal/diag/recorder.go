// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diag

import (
	"fmt"
	"time"
)

// Entry is one startup diagnostic: what happened and when.
type Entry struct {
	At      time.Time
	Message string
}

// Recorder accumulates ordered startup diagnostics during configuration
// resolution. The zero value is ready to use. Not safe for concurrent use;
// resolution runs single-threaded before anything else starts.
type Recorder struct {
	entries []Entry
}

// Recordf formats and appends one entry, stamped with the current time.
func (r *Recorder) Recordf(format string, args ...any) {
	r.entries = append(r.entries, Entry{
		At:      time.Now(),
		Message: fmt.Sprintf(format, args...),
	})
}

// Entries returns the recorded entries in order.
func (r *Recorder) Entries() []Entry {
	if r == nil {
		return nil
	}
	return r.entries
}

// Messages returns just the message texts, in order.
func (r *Recorder) Messages() []string {
	if r == nil {
		return nil
	}

	messages := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		messages = append(messages, entry.Message)
	}
	return messages
}
