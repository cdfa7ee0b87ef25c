package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArgs() []string {
	return []string{
		"-name", "Conan",
		"-class", "warrior",
		"-level", "10",
		"-date", "2025-06-01",
		"-seed", "42",
	}
}

func TestRun_ValidationFailures(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"empty name", []string{"-name", "", "-class", "warrior", "-level", "10", "-date", "2025-06-01"}},
		{"unknown class", []string{"-name", "Conan", "-class", "paladin", "-level", "10", "-date", "2025-06-01"}},
		{"level too low", []string{"-name", "Conan", "-class", "warrior", "-level", "0", "-date", "2025-06-01"}},
		{"level too high", []string{"-name", "Conan", "-class", "warrior", "-level", "101", "-date", "2025-06-01"}},
		{"bad date", []string{"-name", "Conan", "-class", "warrior", "-level", "10", "-date", "06/01/2025"}},
		{"missing date", []string{"-name", "Conan", "-class", "warrior", "-level", "10"}},
		{"unknown flag", []string{"-bogus"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, exitValidation, run(tc.args))
		})
	}
}

func TestRun_ProducesArtifactsAndOutcomeExit(t *testing.T) {
	t.Chdir(t.TempDir())

	code := run(validArgs())
	require.Contains(t, []int{exitVictory, exitDefeat}, code,
		"a completed battle must exit 0 (victory) or 1 (defeat/timeout)")

	logData, err := os.ReadFile("game_log.txt")
	require.NoError(t, err)
	assert.Contains(t, string(logData), "=== BATTLE START ===")

	htmlData, err := os.ReadFile("battle_report.html")
	require.NoError(t, err)
	assert.Contains(t, string(htmlData), "Conan")
}

func TestRun_SeededBattlesAreReproducible(t *testing.T) {
	runOnce := func(t *testing.T) (int, string) {
		t.Helper()
		dir := t.TempDir()
		t.Chdir(dir)
		code := run(validArgs())
		data, err := os.ReadFile("game_log.txt")
		require.NoError(t, err)
		return code, string(data)
	}

	codeA, logA := runOnce(t)
	codeB, logB := runOnce(t)

	assert.Equal(t, codeA, codeB)
	// Narration is identical apart from wall-clock timestamps; compare the
	// turn-and-message portion of each line.
	require.Equal(t, stripTimestamps(logA), stripTimestamps(logB))
}

func TestRun_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	args := append(validArgs(), "-config", filepath.Join("nope", "absent.yaml"))
	assert.Equal(t, exitUnexpected, run(args))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2025-06-01"))
	assert.Error(t, validateDate("2025-13-01"))
	assert.Error(t, validateDate("01-06-2025"))
	assert.Error(t, validateDate(""))
}

// stripTimestamps removes the leading "[HH:MM:SS.mmm] " stamp from battle
// log lines so seeded runs can be compared.
func stripTimestamps(log string) string {
	var out []byte
	for _, line := range splitLines(log) {
		// The generation header carries wall-clock time too.
		if len(line) > 10 && line[:10] == "Generated:" {
			continue
		}
		if len(line) > 14 && line[0] == '[' && line[13] == ']' {
			line = line[15:]
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return string(out)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
