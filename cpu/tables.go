package cpu

//
// Mnemonic lookup tables
//

// Comp maps computation mnemonics to the 7-bit a+c1..c6 pattern.
var Comp = map[string]uint16{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"D|A": 0b0010101,

	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"D|M": 0b1010101,
}

// Dest maps destination mnemonics to the 3-bit d1d2d3 pattern.
// An absent destination is encoded as 000 and has no entry.
var Dest = map[string]uint16{
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"AD":  0b110,
	"AMD": 0b111,
}

// Jump maps jump mnemonics to the 3-bit j1j2j3 pattern.
// An absent jump is encoded as 000 and has no entry.
var Jump = map[string]uint16{
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

// invert builds the pattern-to-mnemonic view of a table.
func invert(table map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(table))
	for k, v := range table {
		out[v] = k
	}
	return out
}

var (
	compNames = invert(Comp)
	destNames = invert(Dest)
	jumpNames = invert(Jump)
)

// CompName returns the mnemonic for a 7-bit comp pattern.
func CompName(bits uint16) (string, bool) {
	s, ok := compNames[bits&CompMask]
	return s, ok
}

// DestName returns the mnemonic for a 3-bit dest pattern. Zero yields "".
func DestName(bits uint16) string {
	return destNames[bits&DestMask]
}

// JumpName returns the mnemonic for a 3-bit jump pattern. Zero yields "".
func JumpName(bits uint16) string {
	return jumpNames[bits&JumpMask]
}
