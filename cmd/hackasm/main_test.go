package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Urethramancer/hack/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.ErrorLevel)
	os.Exit(m.Run())
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{"Prog.asm", ".hack", "Prog.hack"},
		{"dir/Max.asm", ".hack", "dir/Max.hack"},
		{"my.dir/Pong.asm", ".bin", "my.dir/Pong.bin"},
		{"noext", ".hack", "noext.hack"},
		{"a.b.asm", ".hack", "a.b.hack"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputPath(tt.in, tt.ext), tt.in)
	}
}

func TestCheckInput(t *testing.T) {
	dir := t.TempDir()
	err := checkInput(filepath.Join(dir, "missing.asm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = checkInput(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")

	path := filepath.Join(dir, "ok.asm")
	require.NoError(t, os.WriteFile(path, []byte("@1\n"), 0o644))
	assert.NoError(t, checkInput(path))
}

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Add.asm")
	src := "// Computes R0 = 2 + 3\n@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"
	require.NoError(t, os.WriteFile(in, []byte(src), 0o644))

	out := outputPath(in, ".hack")
	require.NoError(t, assembleFile(in, out, config.FormatText))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0000000000000010\n1110110000010000\n0000000000000011\n1110000010010000\n0000000000000000\n1110001100001000\n", string(got))

	raw := outputPath(in, ".bin")
	require.NoError(t, assembleFile(in, raw, config.FormatRaw))
	got, err = os.ReadFile(raw)
	require.NoError(t, err)
	assert.Len(t, got, 12)
	assert.Equal(t, []byte{0x00, 0x02, 0xEC, 0x10}, got[:4])
}

func TestAssembleFileLeavesNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Bad.asm")
	require.NoError(t, os.WriteFile(in, []byte("@1\nD=D%A\n"), 0o644))

	out := filepath.Join(dir, "Bad.hack")
	require.Error(t, assembleFile(in, out, config.FormatText))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAssembleFileKeepsOldOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Bad.asm")
	out := filepath.Join(dir, "Bad.hack")
	require.NoError(t, os.WriteFile(in, []byte("@nowhere\n0;JXX\n"), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("previous\n"), 0o644))

	require.Error(t, assembleFile(in, out, config.FormatText))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(got))
}

func TestAssembleFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := assembleFile(filepath.Join(dir, "nope.asm"), filepath.Join(dir, "nope.hack"), config.FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
