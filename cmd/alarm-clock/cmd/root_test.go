package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())

	return out.String()
}

// TestCommands walks through init, check and show against a temporary directory.
// The commands share package-level flag state, so the steps run sequentially.
func TestCommands(t *testing.T) {
	dir := t.TempDir()
	document := filepath.Join(dir, "config.yaml")
	store := filepath.Join(dir, "latest.json")

	common := []string{"--config", document, "--snapshot", store, "--log-level", "error"}
	run := func(args ...string) string {
		return execute(t, append(args, common...)...)
	}

	require.Contains(t, run("check", "--no-snapshot"), "not found, using defaults")
	require.Contains(t, run("init"), "wrote "+document)
	require.Contains(t, run("check", "--no-snapshot=false"), "is valid: 2 alarm(s), snapshot ")

	out := run("show", "--json")
	require.Contains(t, out, `"Alarm clock"`)
	require.Contains(t, out, `"05:50:00"`)

	out = run("show", "--latest", "--json=false")
	require.Contains(t, out, "Alarm clock")
	require.Contains(t, out, "06:00:00")
}
