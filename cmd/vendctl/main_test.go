package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestOpenCSV_Latin1(t *testing.T) {
	// "Estación" en ISO-8859-1: ó = 0xF3
	path := writeTemp(t, []byte("location\nEstaci\xf3n\n"))

	in, err := openCSV(path, "latin1")
	require.NoError(t, err)
	defer in.Close()
	raw, err := io.ReadAll(in)
	require.NoError(t, err)

	assert.Equal(t, "location\nEstación\n", string(raw))
}

func TestOpenCSV_UTF8(t *testing.T) {
	path := writeTemp(t, []byte("location\nEstación\n"))

	in, err := openCSV(path, "")
	require.NoError(t, err)
	defer in.Close()
	raw, err := io.ReadAll(in)
	require.NoError(t, err)

	assert.Equal(t, "location\nEstación\n", string(raw))
}

func TestOpenCSV_Errors(t *testing.T) {
	_, err := openCSV(filepath.Join(t.TempDir(), "no-existe.csv"), "utf8")
	assert.Error(t, err)

	_, err = openCSV(writeTemp(t, []byte("x")), "ebcdic")
	assert.Error(t, err)
}

func TestMigrateCommand_RejectsUnknownDirection(t *testing.T) {
	cmd := newMigrateCommand()
	cmd.SetArgs([]string{"sideways"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
