package assembler

import (
	"strings"

	"github.com/pkg/errors"
)

// Fields holds the parts of a C-instruction. An empty Dest or Jump is absent.
type Fields struct {
	Dest string
	Comp string
	Jump string
}

// Classify returns the kind of a cleaned instruction line.
func Classify(line string) Kind {
	switch {
	case strings.HasPrefix(line, "@"):
		return AddressInstruction
	case strings.HasPrefix(line, "("):
		return LabelDefinition
	default:
		return ComputeInstruction
	}
}

// Symbol returns the operand of an A-instruction or the name of a label.
func Symbol(line string) (string, error) {
	var sym string
	switch Classify(line) {
	case AddressInstruction:
		sym = line[1:]
	case LabelDefinition:
		if len(line) < 2 || line[len(line)-1] != ')' {
			return "", errors.Wrapf(ErrMalformed, "label %q is not closed", line)
		}
		sym = line[1 : len(line)-1]
	default:
		return "", errors.Wrapf(ErrWrongKind, "symbol of %s %q", ComputeInstruction, line)
	}

	sym = strings.TrimSpace(sym)
	if sym == "" {
		return "", errors.Wrapf(ErrMalformed, "empty symbol in %q", line)
	}
	return sym, nil
}

// ExtractFields splits a C-instruction into dest, comp and jump.
// The first '=' ends dest; the first ';' after it starts jump.
func ExtractFields(line string) (Fields, error) {
	if k := Classify(line); k != ComputeInstruction {
		return Fields{}, errors.Wrapf(ErrWrongKind, "fields of %s %q", k, line)
	}

	var f Fields
	rest := line
	if dest, after, ok := strings.Cut(rest, "="); ok {
		f.Dest = strings.TrimSpace(dest)
		rest = after
	}
	if comp, jump, ok := strings.Cut(rest, ";"); ok {
		f.Jump = strings.TrimSpace(jump)
		rest = comp
	}
	f.Comp = strings.TrimSpace(rest)

	if f.Comp == "" {
		return Fields{}, errors.Wrapf(ErrMalformed, "no computation in %q", line)
	}
	return f, nil
}
