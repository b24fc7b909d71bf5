package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Urethramancer/hack/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassembleFile(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "Prog.hack")
	require.NoError(t, os.WriteFile(text, []byte("0000000000000010\n1110000010010000\n"), 0o644))
	got, err := disassembleFile(text, config.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "@2\nD=D+A\n", got)

	raw := filepath.Join(dir, "Prog.bin")
	require.NoError(t, os.WriteFile(raw, []byte{0x00, 0x02, 0xE0, 0x90}, 0o644))
	got, err = disassembleFile(raw, config.FormatRaw)
	require.NoError(t, err)
	assert.Equal(t, "@2\nD=D+A\n", got)

	_, err = disassembleFile(text, "hex")
	assert.Error(t, err)
	_, err = disassembleFile(filepath.Join(dir, "missing.hack"), config.FormatText)
	assert.Error(t, err)
}
