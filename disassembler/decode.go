package disassembler

import (
	"strconv"
	"strings"

	"github.com/Urethramancer/hack/cpu"
	"github.com/pkg/errors"
)

// ErrUnknownEncoding is returned for words that are neither a valid
// A-instruction nor a C-instruction with a known comp pattern.
var ErrUnknownEncoding = errors.New("unknown instruction encoding")

// Decode renders one machine word as Hack assembly.
func Decode(w uint16) (string, error) {
	if cpu.IsAddress(w) {
		return "@" + strconv.Itoa(int(w)), nil
	}
	if !cpu.IsCompute(w) {
		return "", errors.Wrapf(ErrUnknownEncoding, "%s: bits 13-14 must be set", cpu.FormatWord(w))
	}

	c, d, j := cpu.SplitCompute(w)
	comp, ok := cpu.CompName(c)
	if !ok {
		return "", errors.Wrapf(ErrUnknownEncoding, "%s: comp %07b", cpu.FormatWord(w), c)
	}

	var b strings.Builder
	if dest := cpu.DestName(d); dest != "" {
		b.WriteString(dest)
		b.WriteByte('=')
	}
	b.WriteString(comp)
	if jump := cpu.JumpName(j); jump != "" {
		b.WriteByte(';')
		b.WriteString(jump)
	}
	return b.String(), nil
}
