package cpu

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ErrBadWord is returned when text is not a 16-digit binary word.
var ErrBadWord = errors.New("not a 16-bit binary word")

// FormatWord renders w as sixteen '0'/'1' characters, most significant bit first.
func FormatWord(w uint16) string {
	var b [WordBits]byte
	for i := range b {
		if w&(1<<(WordBits-1-i)) != 0 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b[:])
}

// ParseWord is the inverse of FormatWord.
func ParseWord(s string) (uint16, error) {
	if len(s) != WordBits {
		return 0, errors.Wrapf(ErrBadWord, "%q has %d characters", s, len(s))
	}
	var w uint16
	for i := 0; i < len(s); i++ {
		w <<= 1
		switch s[i] {
		case '0':
		case '1':
			w |= 1
		default:
			return 0, errors.Wrapf(ErrBadWord, "%q contains %q", s, s[i])
		}
	}
	return w, nil
}

// WriteText writes one formatted word per line.
func WriteText(w io.Writer, words []uint16) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(FormatWord(word)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WordsToBytes converts a slice of 16-bit words to a big-endian byte slice.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 16-bit words.
// If an odd number of bytes is passed, the final byte is padded with 0.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out
}
