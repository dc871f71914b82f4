// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// MAX_TEXT_BYTES is the object-code budget of a single text record.
const MAX_TEXT_BYTES = 30

// dataBytes converts a WORD or BYTE operand to its object-code hex string.
func dataBytes(operand string, equates map[string]int) (object string, err error) {
	if len(operand) == 0 {
		return
	}

	upper := strings.ToUpper(operand)

	switch {
	case strings.HasPrefix(upper, "C'") && len(upper) >= 3:
		// Character constant: C'EOF' -> 454F46
		var out strings.Builder
		for _, c := range upper[2 : len(upper)-1] {
			fmt.Fprintf(&out, "%02X", c)
		}
		object = out.String()

	case strings.HasPrefix(upper, "X'") && len(upper) >= 3:
		// Hex constant: X'0A' -> 0A
		object = upper[2 : len(upper)-1]

	case strings.HasPrefix(operand, "$("):
		var value int
		value, err = number(operand, equates)
		if err != nil {
			return
		}
		object = fmt.Sprintf("%06X", value&0xffffff)

	default:
		var value int
		value, err = strconv.Atoi(operand)
		if err != nil {
			err = ErrParseNumber(operand)
			return
		}
		object = fmt.Sprintf("%06X", value&0xffffff)
	}

	return
}

// Records generates the object program from the Pass I tables: one header
// record, text records capped at MAX_TEXT_BYTES of code each, and one end
// record. Unresolvable operands assemble to address 0000 with a diagnostic;
// no diagnostic aborts the pass.
func (unit *Unit) Records() (records []string, diags []string) {
	name := fmt.Sprintf("%-6.6v", unit.Name)
	records = append(records, fmt.Sprintf("H%v%04X%06X", name, unit.Start, unit.Length))

	textStart := 0
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			records = append(records, fmt.Sprintf("T%04X%02X%v", textStart, text.Len()/2, text.String()))
			text.Reset()
		}
	}

	for _, line := range unit.Intermediate {
		var object string

		if op, ok := Optab[line.Opcode]; ok {
			address := 0
			if addr, ok := unit.Symbols[line.Operand]; ok {
				address = addr
			} else if lit, ok := unit.literal(line.Operand); strings.HasPrefix(line.Operand, "=") && ok {
				address = lit.Addr
			} else if len(line.Operand) > 0 {
				diags = append(diags,
					fmt.Sprintf("Warning: Symbol/Literal '%v' not found. Using address 0000.", line.Operand))
			}
			object = fmt.Sprintf("%02X%04X", op.Code, address)
		} else {
			switch line.Opcode {
			case "WORD", "BYTE":
				data, err := dataBytes(line.Operand, unit.Equates)
				if err != nil {
					diags = append(diags,
						fmt.Sprintf("Warning: %v operand '%v' not convertible. No code generated.", line.Opcode, line.Operand))
					continue
				}
				object = data

			case "RESW", "RESB":
				// Reservations generate no code and close the open record.
				flush()
				continue

			default:
				// START, END, and anything unknown contribute no bytes.
				continue
			}
		}

		if len(object) == 0 {
			continue
		}

		if text.Len() == 0 {
			textStart = line.LC
		}
		if text.Len()+len(object) > MAX_TEXT_BYTES*2 {
			flush()
			textStart = line.LC
		}
		text.WriteString(object)
	}

	flush()
	records = append(records, fmt.Sprintf("E%04X", unit.Start))

	return
}

// Report writes the Pass I tables and intermediate listing.
func (unit *Unit) Report(w io.Writer) {
	fmt.Fprintf(w, "--- SYMTAB ---\n")
	for _, name := range slices.Sorted(maps.Keys(unit.Symbols)) {
		fmt.Fprintf(w, "%v: %04X\n", name, unit.Symbols[name])
	}

	fmt.Fprintf(w, "\n--- LITTAB ---\n")
	for _, lit := range unit.Literals {
		fmt.Fprintf(w, "%v: %04X (Len: %v)\n", lit.Text, lit.Addr, lit.Length)
	}

	fmt.Fprintf(w, "\n--- Intermediate File ---\n")
	for _, line := range unit.Intermediate {
		fmt.Fprintf(w, "[%04X] %v %v %v\n", line.LC, line.Label, line.Opcode, line.Operand)
	}

	for _, diag := range unit.Diagnostics {
		fmt.Fprintf(w, "%v\n", diag)
	}
}
