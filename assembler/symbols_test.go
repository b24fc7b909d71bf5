package assembler_test

import (
	"fmt"
	"testing"

	"github.com/Urethramancer/hack/assembler"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTablePredefined(t *testing.T) {
	st := assembler.NewSymbolTable()
	want := map[string]uint16{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": 16384, "KBD": 24576,
	}
	for i := 0; i < 16; i++ {
		want[fmt.Sprintf("R%d", i)] = uint16(i)
	}
	assert.Equal(t, len(want), st.Len())
	for name, addr := range want {
		got, err := st.Address(name)
		require.NoError(t, err, name)
		assert.Equal(t, addr, got, name)
	}
}

func TestSymbolTableEntries(t *testing.T) {
	st := assembler.NewSymbolTable()
	assert.False(t, st.Contains("LOOP"))
	_, err := st.Address("LOOP")
	assert.True(t, errors.Is(err, assembler.ErrUnresolvedSymbol))

	st.AddEntry("LOOP", 4)
	assert.True(t, st.Contains("LOOP"))
	addr, err := st.Address("LOOP")
	require.NoError(t, err)
	assert.Equal(t, uint16(4), addr)

	st.AddEntry("LOOP", 9)
	addr, _ = st.Address("LOOP")
	assert.Equal(t, uint16(9), addr)

	// Names are case-sensitive.
	assert.False(t, st.Contains("loop"))
	assert.False(t, st.Contains("screen"))
}

func TestSymbolTablesAreIndependent(t *testing.T) {
	a := assembler.NewSymbolTable()
	a.AddEntry("x", 16)
	a.AddEntry("SCREEN", 1)

	b := assembler.NewSymbolTable()
	assert.False(t, b.Contains("x"))
	addr, err := b.Address("SCREEN")
	require.NoError(t, err)
	assert.Equal(t, uint16(16384), addr)
}
