package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/aoc/internal/generator"
)

func TestRootCmd_Generates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "input"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "day_7.txt"), []byte("seven"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day_07.go"),
		[]byte("package puzzles\n\nfunc Day07() {}\n"), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--days-dir", dir, "--import-path", "example.com/puzzles"})
	require.NoError(t, cmd.Execute())

	src, err := os.ReadFile(filepath.Join(dir, generator.InputsFile))
	require.NoError(t, err)
	require.Contains(t, string(src), "package puzzles")
	require.Contains(t, string(src), "inputs[7] = input_7")
	require.FileExists(t, filepath.Join(dir, generator.DaysFile))
}

func TestRootCmd_ScanError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--days-dir", filepath.Join(t.TempDir(), "missing")})
	require.Error(t, cmd.Execute())
}
