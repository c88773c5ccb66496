package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugins.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error makes configuration loading inside app.NewApp() panic.
	path := writeConfig(t, `
		plugin "Age" {
		// Missing closing brace here
	`)
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{path})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ConstructorRejectsConfiguration(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
		plugin "Weight" {
			default = -5
		}
	`)

	err := run(&bytes.Buffer{}, []string{path})

	require.Error(t, err)
	require.Contains(t, err.Error(), `plugin "Weight": default must be positive, got -5`)
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
		plugin "Height" {
			enabled = true
		}
	`)
	out := &bytes.Buffer{}

	err := run(out, []string{"-entities", "3", "-sorted", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Plugins initialized.")
	require.Contains(t, out.String(), "Entities created.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
