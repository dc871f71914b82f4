// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"strings"
)

// NameEntry locates one macro within the definition table.
type NameEntry struct {
	Start  int // Index of the macro's header line in Lines.
	Params int // Number of formal parameters.
}

// Tables holds the macro name table and macro definition table built by
// PassOne.
type Tables struct {
	Names map[string]NameEntry // Macro name -> definition location.
	Lines []string             // Definition lines, formals as placeholders.
}

// PassOne walks the source listing. MACRO..MEND blocks are folded into the
// tables, with each formal parameter rewritten as its positional
// placeholder; every other line passes through to the intermediate listing
// unchanged. Only one definition may be open at a time.
func PassOne(source []string) (tables *Tables, intermediate []string, err error) {
	tables = &Tables{
		Names: make(map[string]NameEntry),
	}

	var formals []string
	inMacro := false

	for n, raw := range source {
		lineno := n + 1
		line := ParseLine(raw)
		if line.Opcode == "" {
			continue
		}

		switch {
		case line.Opcode == "MACRO":
			if inMacro {
				err = &ErrSyntax{LineNo: lineno, Line: raw, Err: ErrMacroNesting}
				return
			}
			if _, ok := tables.Names[line.Label]; ok {
				err = &ErrSyntax{LineNo: lineno, Line: raw, Err: ErrMacroDuplicate}
				return
			}
			inMacro = true
			formals = splitArgs(line.Operand)
			tables.Names[line.Label] = NameEntry{
				Start:  len(tables.Lines),
				Params: len(formals),
			}
			tables.Lines = append(tables.Lines, raw)

		case line.Opcode == "MEND":
			if !inMacro {
				err = &ErrSyntax{LineNo: lineno, Line: raw, Err: ErrMendLonely}
				return
			}
			inMacro = false
			tables.Lines = append(tables.Lines, raw)

		case inMacro:
			body := raw
			for i, formal := range formals {
				body = strings.Replace(body, formal, placeholder(i), 1)
			}
			tables.Lines = append(tables.Lines, body)

		default:
			intermediate = append(intermediate, raw)
		}
	}

	if inMacro {
		err = &ErrSyntax{LineNo: len(source), Line: "", Err: ErrMacroOpen}
		return
	}

	return
}
