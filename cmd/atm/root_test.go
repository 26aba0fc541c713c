package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "atm.env"), []byte("ATM_PIN=4321\nATM_OPENING_BALANCE=50\n"), 0o600)
	require.NoError(t, err)

	var out bytes.Buffer

	cmd := newRootCmd(strings.NewReader("4321\n3\n6\n"), &out)
	cmd.SetArgs([]string{"--config-dir", dir})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "Balance: 50\n")
	require.Contains(t, out.String(), "Goodbye!\n")
}

func TestRootCmdBadConfig(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "atm.env"), []byte("ATM_CURRENCY=XXX\n"), 0o600)
	require.NoError(t, err)

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--config-dir", dir})

	require.ErrorContains(t, cmd.Execute(), "cannot load config")
}

func TestRootCmdConfiguredPINIsNormalized(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "atm.env"), []byte("ATM_PIN=0042\n"), 0o600)
	require.NoError(t, err)

	var out bytes.Buffer

	cmd := newRootCmd(strings.NewReader("42\n6\n"), &out)
	cmd.SetArgs([]string{"--config-dir", dir})

	require.NoError(t, cmd.Execute())
	require.NotContains(t, out.String(), "Invalid PIN.")
	require.Contains(t, out.String(), "Goodbye!\n")
}
