package diag

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Recorder ─────────────────────────────────────────────────────────────────

func TestRecorder_KeepsOrderAndStampsEntries(t *testing.T) {
	before := time.Now()
	rec := &Recorder{}

	rec.Recordf("timestamp=%d", 42)
	rec.Recordf("version=%s", "1.2.3")

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "timestamp=42", entries[0].Message)
	assert.Equal(t, "version=1.2.3", entries[1].Message)
	assert.False(t, entries[0].At.Before(before))
	assert.False(t, entries[1].At.Before(entries[0].At))

	assert.Equal(t, []string{"timestamp=42", "version=1.2.3"}, rec.Messages())
}

func TestRecorder_ZeroValueIsUsable(t *testing.T) {
	var rec Recorder

	rec.Recordf("only=%s", "entry")

	assert.Equal(t, []string{"only=entry"}, rec.Messages())
}

func TestRecorder_NilReceiverReadsAreSafe(t *testing.T) {
	var rec *Recorder

	assert.Nil(t, rec.Entries())
	assert.Nil(t, rec.Messages())
}

// ── StartupLog.WriteRun ──────────────────────────────────────────────────────

func TestStartupLog_WriteRunWritesBannerThenMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startup.log")
	log := NewStartupLogAt(path)
	rec := &Recorder{}
	rec.Recordf("timestamp=1")
	rec.Recordf("version=1.2.3")

	log.WriteRun(rec)
	log.Append("startup_result=ok")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		Banner+"\ntimestamp=1\nversion=1.2.3\nstartup_result=ok\n",
		string(content))
}

func TestStartupLog_WriteRunWithNilRecorderWritesBannerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startup.log")
	log := NewStartupLogAt(path)

	log.WriteRun(nil)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Banner+"\n", string(content))
}
