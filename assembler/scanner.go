package assembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Scanner walks the instruction lines of a source, skipping blanks and comments.
type Scanner struct {
	src     io.ReadSeeker
	r       *bufio.Reader
	line    int
	current string
	ok      bool
	err     error
}

// NewScanner primes the first instruction of src.
func NewScanner(src io.ReadSeeker) *Scanner {
	s := &Scanner{src: src, r: bufio.NewReader(src)}
	s.Advance()
	return s
}

// HasNext reports whether there is a current instruction.
func (s *Scanner) HasNext() bool {
	return s.ok
}

// Instruction returns the current cleaned instruction line.
func (s *Scanner) Instruction() string {
	return s.current
}

// Line returns the 1-based source line of the current instruction.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first read or seek error, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Reset rewinds to the start of the source and primes the first instruction again.
func (s *Scanner) Reset() error {
	if _, err := s.src.Seek(0, io.SeekStart); err != nil {
		s.err = errors.Wrap(err, "rewinding source")
		s.ok = false
		return s.err
	}
	s.r.Reset(s.src)
	s.line = 0
	s.err = nil
	s.Advance()
	return nil
}

// Advance moves to the next line that holds an instruction.
// At end of input HasNext becomes false.
func (s *Scanner) Advance() {
	s.ok = false
	s.current = ""
	if s.err != nil {
		return
	}

	inBlock := false
	for {
		raw, err := s.r.ReadString('\n')
		if raw == "" && err != nil {
			if err != io.EOF {
				s.err = errors.Wrap(err, "reading source")
			}
			return
		}
		s.line++

		text := strings.TrimSpace(raw)
		if inBlock {
			if strings.Contains(text, "*/") {
				inBlock = false
			}
			continue
		}

		// "/**" headers are ordinary block comments.
		if strings.HasPrefix(text, "/*") {
			if !strings.Contains(text[2:], "*/") {
				inBlock = true
			}
			continue
		}

		if i := strings.Index(text, "//"); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}

		s.current = text
		s.ok = true
		return
	}
}
