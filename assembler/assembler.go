package assembler

import (
	"io"
	"strconv"
	"strings"

	"github.com/Urethramancer/hack/cpu"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Assembler translates Hack assembly into machine words.
// It is not safe for concurrent use.
type Assembler struct {
	log     *logrus.Entry
	symbols *SymbolTable
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the log entry used for pass and resolution messages.
func WithLogger(l *logrus.Entry) Option {
	return func(asm *Assembler) {
		asm.log = l
	}
}

// New creates a new Assembler instance.
func New(opts ...Option) *Assembler {
	asm := &Assembler{
		log: logrus.WithField("component", "assembler"),
	}
	for _, o := range opts {
		o(asm)
	}
	return asm
}

// Symbols returns the symbol table of the most recent run, or nil before the first.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// AssembleString is Assemble over an in-memory source.
func (asm *Assembler) AssembleString(src string) ([]uint16, error) {
	return asm.Assemble(strings.NewReader(src))
}

// Assemble runs both passes over src and returns one word per A- or
// C-instruction in source order. Nothing is returned unless the whole
// source translates.
func (asm *Assembler) Assemble(src io.ReadSeeker) ([]uint16, error) {
	asm.symbols = NewSymbolTable()

	s := NewScanner(src)
	if err := asm.bindLabels(s); err != nil {
		return nil, err
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}

	words, err := asm.encode(s)
	if err != nil {
		return nil, err
	}
	asm.log.WithField("words", len(words)).Info("assembly complete")
	return words, nil
}

// bindLabels is the first pass: every label gets the address of the
// instruction that follows it.
func (asm *Assembler) bindLabels(s *Scanner) error {
	asm.log.Debug("starting first pass")
	pc := 0
	for ; s.HasNext(); s.Advance() {
		line := s.Instruction()
		if Classify(line) != LabelDefinition {
			pc++
			continue
		}

		name, err := Symbol(line)
		if err != nil {
			return lineError(err, s)
		}
		if pc > int(cpu.MaxAddress) {
			return lineError(errors.Wrapf(ErrAddressRange, "label %q at %d", name, pc), s)
		}
		asm.symbols.AddEntry(name, uint16(pc))
		asm.log.WithFields(logrus.Fields{"label": name, "address": pc}).Debug("bound label")
	}
	if err := s.Err(); err != nil {
		return err
	}
	asm.log.WithField("symbols", asm.symbols.Len()).Debug("first pass complete")
	return nil
}

// encode is the second pass: variables are allocated in first-use order
// and every real instruction becomes a word.
func (asm *Assembler) encode(s *Scanner) ([]uint16, error) {
	asm.log.Debug("starting second pass")
	var words []uint16
	next := uint32(cpu.FirstVariable)
	for ; s.HasNext(); s.Advance() {
		line := s.Instruction()

		var word uint16
		switch Classify(line) {
		case LabelDefinition:
			continue

		case AddressInstruction:
			sym, err := Symbol(line)
			if err != nil {
				return nil, lineError(err, s)
			}
			addr, err := asm.resolve(sym, &next)
			if err != nil {
				return nil, lineError(err, s)
			}
			word, err = EncodeAddress(addr)
			if err != nil {
				return nil, lineError(err, s)
			}
			asm.log.WithFields(logrus.Fields{"symbol": sym, "address": addr}).Debug("A-instruction")

		case ComputeInstruction:
			f, err := ExtractFields(line)
			if err != nil {
				return nil, lineError(err, s)
			}
			word, err = EncodeCompute(f)
			if err != nil {
				return nil, lineError(err, s)
			}
			asm.log.WithFields(logrus.Fields{"dest": f.Dest, "comp": f.Comp, "jump": f.Jump}).Debug("C-instruction")
		}
		words = append(words, word)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	asm.log.Debug("second pass complete")
	return words, nil
}

// resolve turns an A-instruction operand into an address, allocating a
// variable at *next if the symbol is new.
func (asm *Assembler) resolve(sym string, next *uint32) (uint16, error) {
	if isNumeric(sym) {
		n, err := strconv.ParseUint(sym, 10, 16)
		if err != nil || n > uint64(cpu.MaxAddress) {
			return 0, errors.Wrapf(ErrAddressRange, "constant %s", sym)
		}
		return uint16(n), nil
	}

	if !asm.symbols.Contains(sym) {
		if *next > uint32(cpu.MaxAddress) {
			return 0, errors.Wrapf(ErrAddressRange, "no room for variable %q", sym)
		}
		asm.symbols.AddEntry(sym, uint16(*next))
		asm.log.WithFields(logrus.Fields{"variable": sym, "address": *next}).Debug("allocated variable")
		*next++
	}
	return asm.symbols.Address(sym)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func lineError(err error, s *Scanner) error {
	return errors.Wrapf(err, "line %d: %s", s.Line(), s.Instruction())
}
