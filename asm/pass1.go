// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Source is one assembly statement.
type Source struct {
	Label   string
	Opcode  string
	Operand string
}

// Inter is one intermediate line: a source statement tagged with the
// location counter it was assembled at.
type Inter struct {
	LC      int
	Label   string
	Opcode  string
	Operand string
}

// Literal is one literal-table entry. Addr stays -1 until END processing
// assigns the literal pool its addresses.
type Literal struct {
	Text   string
	Addr   int
	Length int
}

// Unit is the output of Pass I and the sole input of Pass II.
type Unit struct {
	Name         string
	Start        int
	Length       int
	Symbols      map[string]int
	Literals     []Literal
	Intermediate []Inter
	Equates      map[string]int
	Diagnostics  []string
}

// literal looks up a literal-table entry by its source text.
func (unit *Unit) literal(text string) (lit *Literal, ok bool) {
	for n := range unit.Literals {
		if unit.Literals[n].Text == text {
			return &unit.Literals[n], true
		}
	}
	return
}

// Assembler drives both passes over a source program.
type Assembler struct {
	Verbose bool // If set, verbosely logs location counter updates.
}

// statement renders a source line for error context.
func statement(line Source) string {
	return strings.TrimSpace(fmt.Sprintf("%v %v %v", line.Label, line.Opcode, line.Operand))
}

// byteLength decodes the storage length of a BYTE operand: C'..' is one
// byte per character, X'..' one byte per hex pair.
func byteLength(operand string) int {
	upper := strings.ToUpper(operand)
	switch {
	case strings.HasPrefix(upper, "C'") && len(upper) >= 3:
		return len(upper) - 3
	case strings.HasPrefix(upper, "X'") && len(upper) >= 3:
		return (len(upper) - 3) / 2
	}
	return 0
}

// literalLength decodes the storage length of a literal value, defaulting
// to one word for an ambiguous or truncated form.
func literalLength(value string) int {
	upper := strings.ToUpper(value)
	switch {
	case strings.HasPrefix(upper, "C'") && len(upper) >= 3:
		return len(upper) - 3
	case strings.HasPrefix(upper, "X'") && len(upper) >= 3:
		return (len(upper) - 3) / 2
	}
	return 3
}

// PassOne computes the location counter for every statement, builds the
// symbol, literal, and equate tables, and emits the intermediate listing.
// Forward references are left unresolved for Pass II.
//
// A duplicate label is a diagnostic, not an error; the later definition
// overwrites the earlier address.
func (asm *Assembler) PassOne(source []Source) (unit *Unit, err error) {
	unit = &Unit{
		Symbols: make(map[string]int),
		Equates: make(map[string]int),
	}
	lc := 0

	for n, line := range source {
		lineno := n + 1

		if line.Opcode == "START" {
			unit.Name = line.Label
			if len(line.Operand) > 0 {
				start, perr := strconv.ParseInt(line.Operand, 16, 32)
				if perr != nil {
					err = &ErrSyntax{LineNo: lineno, Line: statement(line), Err: ErrParseNumber(line.Operand)}
					return
				}
				unit.Start = int(start)
			}
			lc = unit.Start
			unit.Intermediate = append(unit.Intermediate, Inter{LC: lc, Label: line.Label, Opcode: line.Opcode, Operand: line.Operand})
			if asm.Verbose {
				log.Printf("START: LC set to %04X\n", lc)
			}
			continue
		}

		if line.Opcode == "EQU" {
			if len(line.Label) == 0 {
				err = &ErrSyntax{LineNo: lineno, Line: statement(line), Err: ErrEquateLabelMissing}
				return
			}
			var value int
			value, err = number(line.Operand, unit.Equates)
			if err != nil {
				err = &ErrSyntax{LineNo: lineno, Line: statement(line), Err: err}
				return
			}
			unit.Equates[line.Label] = value
			continue
		}

		if len(line.Label) > 0 {
			if _, ok := unit.Symbols[line.Label]; ok {
				unit.Diagnostics = append(unit.Diagnostics,
					fmt.Sprintf("Error: Duplicate label '%v' at LC %04X", line.Label, lc))
			}
			// The later definition wins; the earlier address is discarded.
			unit.Symbols[line.Label] = lc
		}

		if line.Opcode != "END" {
			unit.Intermediate = append(unit.Intermediate, Inter{LC: lc, Label: line.Label, Opcode: line.Opcode, Operand: line.Operand})
		}

		if op, ok := Optab[line.Opcode]; ok {
			lc += op.Length
		} else {
			switch line.Opcode {
			case "WORD":
				lc += 3
			case "RESW":
				var count int
				count, err = number(line.Operand, unit.Equates)
				if err != nil {
					err = &ErrSyntax{LineNo: lineno, Line: statement(line), Err: err}
					return
				}
				lc += 3 * count
			case "RESB":
				var count int
				count, err = number(line.Operand, unit.Equates)
				if err != nil {
					err = &ErrSyntax{LineNo: lineno, Line: statement(line), Err: err}
					return
				}
				lc += count
			case "BYTE":
				lc += byteLength(line.Operand)
			}
		}

		if strings.HasPrefix(line.Operand, "=") {
			if _, ok := unit.literal(line.Operand); !ok {
				unit.Literals = append(unit.Literals, Literal{
					Text:   line.Operand,
					Addr:   -1,
					Length: literalLength(line.Operand[1:]),
				})
			}
		}

		if line.Opcode == "END" {
			unit.Intermediate = append(unit.Intermediate, Inter{LC: lc, Label: line.Label, Opcode: line.Opcode, Operand: line.Operand})

			// Place the literal pool at the end of the program, in the
			// order the literals were first seen.
			for n := range unit.Literals {
				lit := &unit.Literals[n]
				if lit.Addr < 0 {
					lit.Addr = lc
					lc += lit.Length
				}
			}
			break
		}
	}

	unit.Length = lc - unit.Start

	if asm.Verbose {
		log.Printf("Pass I complete, program length %04X\n", unit.Length)
	}

	return
}
