package assembler

import (
	"github.com/Urethramancer/hack/cpu"
	"github.com/pkg/errors"
)

// SymbolTable maps symbol names to RAM or ROM addresses.
// Entries are never removed.
type SymbolTable struct {
	entries map[string]uint16
}

// NewSymbolTable returns a table seeded with the predefined symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{entries: make(map[string]uint16, len(cpu.Predefined)+32)}
	for name, addr := range cpu.Predefined {
		st.entries[name] = addr
	}
	return st
}

// AddEntry binds name to address, replacing any earlier binding.
func (st *SymbolTable) AddEntry(name string, address uint16) {
	st.entries[name] = address
}

// Contains reports whether name is bound.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.entries[name]
	return ok
}

// Address returns the address bound to name.
func (st *SymbolTable) Address(name string) (uint16, error) {
	addr, ok := st.entries[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnresolvedSymbol, "%q", name)
	}
	return addr, nil
}

// Len returns the number of bound symbols, predefined ones included.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}
