package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
)

const clientEnvFileName = "client.env"

// candidateClientEnvFiles returns the fixed client.env search order: working
// directory, executable directory, per-user config directory. An empty
// baseDir drops the per-user candidate.
func candidateClientEnvFiles(baseDir string) []string {
	files := []string{clientEnvFileName}

	if exe, err := os.Executable(); err == nil {
		files = append(files, filepath.Join(filepath.Dir(exe), clientEnvFileName))
	}

	if baseDir != "" {
		files = append(files, filepath.Join(baseDir, clientEnvFileName))
	}

	return files
}

// parseClientEnv parses one client.env payload. Blank lines and #-comments
// are skipped, lines split on the first '=', keys and values trimmed, and
// one matching pair of surrounding quotes stripped from the value. Lines
// with an empty key are ignored; empty values are kept so that a later file
// can blank out an earlier one's setting.
func parseClientEnv(content string) map[string]string {
	values := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		values[key] = stripQuotes(strings.TrimSpace(value))
	}

	return values
}

// stripQuotes removes one matching pair of surrounding single or double
// quotes. Unmatched and inner quotes are left alone.
func stripQuotes(value string) string {
	if len(value) < 2 || value[0] != value[len(value)-1] {
		return value
	}

	if value[0] == '"' || value[0] == '\'' {
		return value[1 : len(value)-1]
	}

	return value
}

// loadClientEnvValues reads every candidate file and merges the parsed
// results, later files overwriting earlier ones key by key, empty values
// included. Missing or unreadable files are skipped; a kiosk must boot with
// any subset of the candidates present.
func loadClientEnvValues(baseDir string) (map[string]string, error) {
	merged := make(map[string]string)

	for _, file := range candidateClientEnvFiles(baseDir) {
		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}

		values := parseClientEnv(string(content))
		if err := mergo.Merge(&merged, values, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
			return nil, fmt.Errorf("error merging config files: %w", err)
		}
	}

	return merged, nil
}
