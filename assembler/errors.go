package assembler

import "github.com/pkg/errors"

// Every failure returned by this package wraps exactly one of these.
// Use errors.Is to tell them apart.
var (
	// ErrWrongKind means an accessor was used on the wrong instruction kind.
	ErrWrongKind = errors.New("accessor called on wrong instruction kind")
	// ErrUnresolvedSymbol means a symbol was looked up before being bound.
	ErrUnresolvedSymbol = errors.New("unresolved symbol")
	// ErrUnknownMnemonic means a dest, comp or jump field is not in the ISA.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	// ErrMalformed means the instruction text does not fit its kind.
	ErrMalformed = errors.New("malformed instruction")
	// ErrAddressRange means an address does not fit in 15 bits.
	ErrAddressRange = errors.New("address out of range")
)
