package disassembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/Urethramancer/hack/cpu"
	"github.com/pkg/errors"
)

// Disassemble reads .hack text, one binary word per line, and returns the
// listing with one instruction per line. Blank lines are skipped.
func Disassemble(r io.Reader) (string, error) {
	var out strings.Builder
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		w, err := cpu.ParseWord(text)
		if err != nil {
			return "", errors.Wrapf(err, "line %d", n)
		}
		ins, err := Decode(w)
		if err != nil {
			return "", errors.Wrapf(err, "line %d", n)
		}
		out.WriteString(ins)
		out.WriteByte('\n')
	}
	if err := s.Err(); err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return out.String(), nil
}

// DisassembleWords is Disassemble over words already in memory, such as a
// raw big-endian image read through cpu.BytesToWords.
func DisassembleWords(words []uint16) (string, error) {
	var out strings.Builder
	for i, w := range words {
		ins, err := Decode(w)
		if err != nil {
			return "", errors.Wrapf(err, "word %d", i)
		}
		out.WriteString(ins)
		out.WriteByte('\n')
	}
	return out.String(), nil
}
