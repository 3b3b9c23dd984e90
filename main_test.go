package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunInstanceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instances.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 -2\n\n1\n-1\n"), 0o644))

	out, err := runCmd(t, "--check", path)
	require.NoError(t, err)
	assert.Equal(t, "SATISFIABLE\n1 -2\nUNSATISFIABLE\n", out)
}

func TestRunNegatedZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.txt")
	require.NoError(t, os.WriteFile(path, []byte("-0\n"), 0o644))

	out, err := runCmd(t, path)
	require.NoError(t, err)
	assert.Equal(t, "SATISFIABLE\n-0\n", out)
}

func TestRunBadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 x\n"), 0o644))

	_, err := runCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRunMissingFile(t *testing.T) {
	_, err := runCmd(t, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
