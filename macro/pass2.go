// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package macro

import (
	"fmt"
	"strings"
)

// Expand replays the intermediate listing against the tables, expanding
// every call of a known macro in place. Lines whose opcode is not a macro
// name pass through unchanged; blank lines are dropped.
//
// Diagnostics never abort the pass: an argument-count mismatch or a
// definition-table overrun emits an inline error marker and continues with
// the next line.
func (tables *Tables) Expand(intermediate []string) (output []string) {
	for _, raw := range intermediate {
		line := ParseLine(raw)
		if len(line.Opcode) == 0 {
			continue
		}

		entry, ok := tables.Names[line.Opcode]
		if !ok {
			output = append(output, raw)
			continue
		}

		args := splitArgs(line.Operand)
		if len(args) != entry.Params {
			output = append(output, fmt.Sprintf("**ERROR: Incorrect number of arguments for macro %v.", line.Opcode))
			continue
		}

		// Replay the definition body, skipping its header line.
		for n := entry.Start + 1; ; n++ {
			if n >= len(tables.Lines) {
				output = append(output, fmt.Sprintf("**ERROR: MDT indexing error during expansion of %v.", line.Opcode))
				break
			}

			body := tables.Lines[n]
			if ParseLine(body).Opcode == "MEND" {
				break
			}

			for i, arg := range args {
				body = strings.Replace(body, placeholder(i), arg, 1)
			}
			output = append(output, body)
		}
	}

	return
}
