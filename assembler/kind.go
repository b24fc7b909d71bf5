package assembler

// Kind is the syntactic class of an instruction line.
type Kind int

const (
	// AddressInstruction is an @value line.
	AddressInstruction Kind = iota
	// ComputeInstruction is a dest=comp;jump line.
	ComputeInstruction
	// LabelDefinition is a (NAME) pseudo-instruction.
	LabelDefinition
)

func (k Kind) String() string {
	switch k {
	case AddressInstruction:
		return "A-instruction"
	case ComputeInstruction:
		return "C-instruction"
	case LabelDefinition:
		return "label"
	}
	return "unknown"
}
