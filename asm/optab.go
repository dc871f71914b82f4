package asm

// Op is one machine instruction: its object-code byte and its length in
// bytes.
type Op struct {
	Code   byte
	Length int
}

// Optab is the fixed instruction set of the pseudo-machine.
var Optab = map[string]Op{
	"LDA": {Code: 0x00, Length: 3},
	"STA": {Code: 0x0C, Length: 3},
	"ADD": {Code: 0x18, Length: 3},
	"JMP": {Code: 0x30, Length: 3},
	"JLT": {Code: 0x38, Length: 3},
	"SUB": {Code: 0x1C, Length: 3},
}
