package macro

import (
	"fmt"
	"strings"
)

// Line is one source statement split into its positional fields.
type Line struct {
	Label   string
	Opcode  string
	Operand string
}

// ParseLine splits a raw statement on whitespace and assigns the tokens
// positionally: one token is an opcode, two are opcode and operand, three
// or more are label, opcode, and operand.
func ParseLine(raw string) (line Line) {
	tokens := strings.Fields(raw)
	switch len(tokens) {
	case 0:
	case 1:
		line.Opcode = tokens[0]
	case 2:
		line.Opcode = tokens[0]
		line.Operand = tokens[1]
	default:
		line.Label = tokens[0]
		line.Opcode = tokens[1]
		line.Operand = tokens[2]
	}
	return
}

// splitArgs splits a comma-separated operand into its non-empty parts.
func splitArgs(operand string) (args []string) {
	for _, arg := range strings.Split(operand, ",") {
		if len(arg) > 0 {
			args = append(args, arg)
		}
	}
	return
}

// placeholder returns the positional stand-in for formal parameter n.
func placeholder(n int) string {
	return fmt.Sprintf("#%v", n)
}
