// ABOUTME: End-to-end tests for the litenotes CLI commands.
// ABOUTME: Runs commands against a temp database with isolated XDG paths.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/harper/litenotes/internal/export"
	"github.com/harper/litenotes/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("LITENOTES_CONFIG", "")
	t.Setenv("LITENOTES_DB_SEED_CATEGORIES", "Work,Personal")
	t.Chdir(dir)
	return dir
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := Execute(context.Background())
	resetFlags(rootCmd)
	return out.String(), err
}

func TestCLIWorkflow(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Personal")
	assert.Contains(t, out, "Work")

	out, err = run(t, "add", "Buy milk", "-k", "work", "-c", "two litres")
	require.NoError(t, err)
	assert.Contains(t, out, "Created note 1")
	assert.Contains(t, out, "Buy milk")

	out, err = run(t, "list", "-k", "Personal")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes")

	out, err = run(t, "list", "-k", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")

	_, err = run(t, "edit", "1", "--title", "Buy oat milk")
	require.NoError(t, err)

	out, err = run(t, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy oat milk")
	assert.Contains(t, out, "Work")

	out, err = run(t, "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted note 1")

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes")
}

func TestCLIValidationErrors(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "add", "No category")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = run(t, "add", "   ", "-k", "Work")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = run(t, "add", "Trip", "-k", "Travel")
	assert.ErrorContains(t, err, "unknown category")

	_, err = run(t, "show", "abc")
	assert.ErrorContains(t, err, "invalid note id")
}

func TestCLIExportImport(t *testing.T) {
	dir := setupCLI(t)

	_, err := run(t, "add", "Standup", "-k", "Work")
	require.NoError(t, err)

	path := filepath.Join(dir, "backup.json")
	_, err = run(t, "export", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	doc, err := export.ReadJSON(f)
	_ = f.Close()
	require.NoError(t, err)
	require.Len(t, doc.Notes, 1)
	assert.Equal(t, "Work", doc.Notes[0].Category)

	out, err := run(t, "--db", filepath.Join(dir, "restored.db"), "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 notes")

	out, err = run(t, "--db", filepath.Join(dir, "restored.db"), "export")
	require.NoError(t, err)
	start := bytes.IndexByte([]byte(out), '{')
	require.GreaterOrEqual(t, start, 0)
	var restored export.Document
	require.NoError(t, json.NewDecoder(bytes.NewBufferString(out[start:])).Decode(&restored))
	require.Len(t, restored.Notes, 1)
	assert.Equal(t, "Standup", restored.Notes[0].Title)
}

func TestCommandsWithoutApp(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"version"}, "litenotes dev"},
		{[]string{"help"}, "Usage:"},
		{[]string{"help", "add"}, "add <title>"},
		{[]string{"completion", "bash"}, "bash completion"},
		{[]string{"__complete", "li"}, "list"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			dir := setupCLI(t)

			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Nil(t, application)

			for _, sub := range []string{"data", "state"} {
				_, err := os.Stat(filepath.Join(dir, sub, "litenotes"))
				assert.True(t, os.IsNotExist(err), "%s directory should not be created", sub)
			}
		})
	}
}
