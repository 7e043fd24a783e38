package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes one registrarctl invocation against file storage in dir
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_DIR", dir)
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "absent.yaml")}, args...))

	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func TestSeedThenList(t *testing.T) {
	dir := t.TempDir()

	assert.Contains(t, run(t, dir, "seed"), "Seeded 3 course types")
	assert.Contains(t, run(t, dir, "seed"), "nothing seeded")

	out := run(t, dir, "list", "course-types")
	assert.Contains(t, out, "Course types (3)")
	for _, name := range []string{"Individual", "Group", "Special"} {
		assert.Contains(t, out, name)
	}
}

func TestListEmptyCollections(t *testing.T) {
	dir := t.TempDir()

	assert.Contains(t, run(t, dir, "list", "courses"), "No entries")
	assert.Contains(t, run(t, dir, "list", "offerings", "--course-type", "any"), "Course offerings (0)")
	assert.Contains(t, run(t, dir, "list", "registrations", "--offering", "any"), "Registrations (0)")
}

func TestListKeepsStdoutForTables(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	noColor := color.NoColor
	color.NoColor = true
	stdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	t.Cleanup(func() {
		os.Stdout = stdout
		color.NoColor = noColor
	})

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "absent.yaml"), "list", "course-types"})
	execErr := cmd.Execute()
	require.NoError(t, w.Close())
	os.Stdout = stdout

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, execErr)
	assert.True(t, strings.HasPrefix(string(out), "Course types (0)"), string(out))
	assert.NotContains(t, string(out), "Logger configured")
}
