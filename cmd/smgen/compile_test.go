package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doorSource = "statemachine Door: Closed -(open)-> Open\nOpen -(close)-> Closed\n"

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "door.go"), outputPath(filepath.Join("a", "b", "door.smachine"), ""))
	assert.Equal(t, filepath.Join("out", "door.go"), outputPath(filepath.Join("a", "b", "door.smachine"), "out"))
	assert.Equal(t, filepath.Join("a", "plain.txt.go"), outputPath(filepath.Join("a", "plain.txt"), ""))
}

func TestCompileCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "door.smachine")
	require.NoError(t, os.WriteFile(src, []byte(doorSource), 0o644))

	cmd := newCompileCommand()
	cmd.SetArgs([]string{src})
	require.NoError(t, cmd.Execute())

	out, err := os.ReadFile(filepath.Join(dir, "door.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "type DoorTransition struct")
}

func TestCompileCommandStdout(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "door.smachine")
	require.NoError(t, os.WriteFile(src, []byte(doorSource), 0o644))

	var buf bytes.Buffer
	cmd := newCompileCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{src, "--stdout"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "func NewClosed() *Door {")
	assert.NoFileExists(t, filepath.Join(dir, "door.go"))
}

func TestCompileCommandSyntaxError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.smachine")
	require.NoError(t, os.WriteFile(src, []byte("statemachine func: A -> B\n"), 0o644))

	cmd := newCompileCommand()
	cmd.SetArgs([]string{src})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved word")
	assert.NoFileExists(t, filepath.Join(dir, "bad.go"))
}
