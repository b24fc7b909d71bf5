package cpu

// Instruction word layout.
//
//	A-instruction: 0vvv vvvv vvvv vvvv
//	C-instruction: 111a cccc ccdd djjj
const (
	// WordBits is the width of every instruction.
	WordBits = 16
	// AddressBits is the width of an A-instruction operand.
	AddressBits = 15
	// MaxAddress is the largest value an A-instruction can load.
	MaxAddress uint16 = 1<<AddressBits - 1

	// ComputePrefix marks a C-instruction (bits 15-13 set).
	ComputePrefix uint16 = 0b111 << 13
	// ComputeMask selects the prefix bits.
	ComputeMask uint16 = 0b111 << 13

	// CompShift positions the 7-bit a+comp field.
	CompShift = 6
	// DestShift positions the 3-bit dest field.
	DestShift = 3
	// JumpShift positions the 3-bit jump field.
	JumpShift = 0

	// CompMask covers the 7-bit a+comp field after shifting.
	CompMask uint16 = 0b1111111
	// DestMask covers the 3-bit dest field after shifting.
	DestMask uint16 = 0b111
	// JumpMask covers the 3-bit jump field after shifting.
	JumpMask uint16 = 0b111

	// ABit is set in a comp pattern when the operand is M instead of A.
	ABit uint16 = 1 << 6
)

// Memory map.
const (
	// FirstVariable is the RAM address handed to the first user variable.
	FirstVariable uint16 = 16
	// ScreenBase is the start of the memory-mapped screen.
	ScreenBase uint16 = 16384
	// KeyboardAddress is the memory-mapped keyboard register.
	KeyboardAddress uint16 = 24576
)

// IsAddress reports whether w is an A-instruction.
func IsAddress(w uint16) bool {
	return w&(1<<15) == 0
}

// IsCompute reports whether w carries the C-instruction prefix.
func IsCompute(w uint16) bool {
	return w&ComputeMask == ComputePrefix
}

// ComputeWord assembles a C-instruction from its three field patterns.
func ComputeWord(comp, dest, jump uint16) uint16 {
	return ComputePrefix |
		(comp&CompMask)<<CompShift |
		(dest&DestMask)<<DestShift |
		(jump&JumpMask)<<JumpShift
}

// SplitCompute returns the comp, dest and jump patterns of a C-instruction.
func SplitCompute(w uint16) (comp, dest, jump uint16) {
	comp = (w >> CompShift) & CompMask
	dest = (w >> DestShift) & DestMask
	jump = (w >> JumpShift) & JumpMask
	return
}
