package webview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitScript_CarriesKioskHardening проверяет, что встроенный скрипт
// не пустой и содержит все три перехвата.
func TestInitScript_CarriesKioskHardening(t *testing.T) {
	script := InitScript()

	require.NotEmpty(t, script)
	assert.Contains(t, script, "window.open")
	assert.Contains(t, script, "_blank")
	assert.Contains(t, script, "KeyA")
	assert.Contains(t, script, "get_about_info")
}
