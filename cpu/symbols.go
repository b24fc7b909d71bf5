package cpu

import "fmt"

// Predefined holds the symbols every program can use without declaring them.
// SP, LCL, ARG, THIS and THAT alias R0-R4.
var Predefined = map[string]uint16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": ScreenBase,
	"KBD":    KeyboardAddress,
}

func init() {
	for i := uint16(0); i < 16; i++ {
		Predefined[fmt.Sprintf("R%d", i)] = i
	}
}
