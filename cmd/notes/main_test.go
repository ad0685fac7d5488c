package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/core"
)

// runCLI executes the command tree in-process against a profile dir.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	all := append([]string{"--dir", dir, "--delete-delay", "1ms"}, args...)
	err := run(context.Background(), all, &stdout, &stderr)
	return stdout.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dir, args...)
	require.NoError(t, err, "notes %s", strings.Join(args, " "))
	return out
}

func readSlot(t *testing.T, dir string) []core.Note {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	notes, err := core.DecodeNotes(data)
	require.NoError(t, err)
	return notes
}

func TestCLI_AddListDelete(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "add", "--title", "Shopping", "--body", "Buy milk", "--tags", "home, errands")
	assert.Contains(t, out, "Note added:")

	mustRun(t, dir, "add", "--title", "Taxes", "--body", "File them", "--tags", "admin")

	stored := readSlot(t, dir)
	require.Len(t, stored, 2)

	out = mustRun(t, dir, "list", "--search", "ERR")
	assert.Contains(t, out, "Shopping [home, errands]")
	assert.NotContains(t, out, "Taxes")

	out = mustRun(t, dir, "tags")
	assert.Equal(t, "home\nerrands\nadmin\n", out)

	id := stored[0].ID
	out = mustRun(t, dir, "delete", formatID(id))
	assert.Contains(t, out, "Note deleted:")

	stored = readSlot(t, dir)
	require.Len(t, stored, 1)
	assert.Equal(t, "Taxes", stored[0].Title)
}

func TestCLI_ListUntagged(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "--title", "Plain", "--body", "no tags")
	id := readSlot(t, dir)[0].ID

	out := mustRun(t, dir, "list")
	assert.Equal(t, formatID(id)+" - Plain\n", out)
}

func TestCLI_CorruptSlotOpensEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{not json"), 0644))

	out := mustRun(t, dir, "list")
	assert.Empty(t, out)
}

func TestCLI_Validation(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "add", "--title", "No body")
	require.ErrorIs(t, err, core.ErrValidation)

	_, statErr := os.Stat(filepath.Join(dir, "notes.json"))
	assert.True(t, os.IsNotExist(statErr), "nothing persisted")
}

func TestCLI_Edit(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "--title", "Draft", "--body", "text", "--tags", "a, b")
	id := readSlot(t, dir)[0].ID

	mustRun(t, dir, "edit", formatID(id), "--title", "Final")

	got := readSlot(t, dir)[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "text", got.Body, "unset flags keep their value")
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	_, err := runCLI(t, dir, "edit", "42", "--title", "x")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = runCLI(t, dir, "edit", "abc")
	assert.Error(t, err)
}

func TestCLI_ListTagGlobJSON(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "--title", "Q3", "--body", "report", "--tags", "work/reports")
	mustRun(t, dir, "add", "--title", "Milk", "--body", "2l", "--tags", "home")

	out := mustRun(t, dir, "list", "--tag", "work/*", "--json")

	var listed []core.Note
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Q3", listed[0].Title)

	_, err := runCLI(t, dir, "list", "--tag", "[")
	assert.Error(t, err)
}

func TestCLI_Export(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "--title", "Shopping", "--body", "Buy milk", "--tags", "home")

	out := mustRun(t, dir, "export", "--format", "md")
	assert.Contains(t, out, "title: Shopping")
	assert.Contains(t, out, "Buy milk")

	target := filepath.Join(t.TempDir(), "notes.yaml")
	mustRun(t, dir, "export", "--format", "yaml", "--output", target)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Shopping")

	_, err = runCLI(t, dir, "export", "--format", "csv")
	assert.Error(t, err)
}

func TestCLI_Status(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "--title", "One", "--body", "1")

	out := mustRun(t, dir, "status")

	var report struct {
		Dir   string `json:"dir"`
		Store struct {
			Notes       int    `json:"notes"`
			StorageType string `json:"storage_type"`
		} `json:"store"`
		Storage map[string]any `json:"storage"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Store.Notes)
	assert.Equal(t, "fs", report.Store.StorageType)
	assert.Equal(t, "fs", report.Storage["type"])
}

func TestCLI_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("read_only: true\n"), 0644))

	mustRun(t, dir, "add", "--title", "Kept", "--body", "yes")

	// Read-only: the add applies in memory, the write is refused and logged.
	mustRun(t, dir, "--config", cfgFile, "add", "--title", "Lost", "--body", "no")
	assert.Len(t, readSlot(t, dir), 1)

	_, err := runCLI(t, dir, "--config", filepath.Join(dir, "missing.yaml"), "list")
	assert.Error(t, err)
}

func TestCLI_Memory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")

	mustRun(t, dir, "--memory", "add", "--title", "Ephemeral", "--body", "gone")

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestCLI_Version(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"version"}, &stdout, &bytes.Buffer{}))
	assert.True(t, strings.HasPrefix(stdout.String(), "notes version "))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestCLI_WatchNeedsFilesystem(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "--memory", "watch")
	assert.ErrorContains(t, err, "cannot be watched")
}
