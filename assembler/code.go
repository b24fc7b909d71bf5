package assembler

import (
	"github.com/Urethramancer/hack/cpu"
	"github.com/pkg/errors"
)

// DestCode returns the 3-bit pattern for a destination. An absent dest is 000.
func DestCode(m string) (uint16, error) {
	if m == "" {
		return 0, nil
	}
	bits, ok := cpu.Dest[m]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownMnemonic, "dest %q", m)
	}
	return bits, nil
}

// CompCode returns the 7-bit a+comp pattern for a computation.
func CompCode(m string) (uint16, error) {
	bits, ok := cpu.Comp[m]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownMnemonic, "comp %q", m)
	}
	return bits, nil
}

// JumpCode returns the 3-bit pattern for a jump condition. An absent jump is 000.
func JumpCode(m string) (uint16, error) {
	if m == "" {
		return 0, nil
	}
	bits, ok := cpu.Jump[m]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownMnemonic, "jump %q", m)
	}
	return bits, nil
}

// EncodeCompute builds the 16-bit word for a C-instruction.
func EncodeCompute(f Fields) (uint16, error) {
	comp, err := CompCode(f.Comp)
	if err != nil {
		return 0, err
	}
	dest, err := DestCode(f.Dest)
	if err != nil {
		return 0, err
	}
	jump, err := JumpCode(f.Jump)
	if err != nil {
		return 0, err
	}
	return cpu.ComputeWord(comp, dest, jump), nil
}

// EncodeAddress builds the 16-bit word for an A-instruction.
func EncodeAddress(addr uint16) (uint16, error) {
	if addr > cpu.MaxAddress {
		return 0, errors.Wrapf(ErrAddressRange, "%d", addr)
	}
	return addr, nil
}
