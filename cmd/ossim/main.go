// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// ossim replays four classic operating-systems simulations over their
// built-in sample inputs: page replacement, a two-pass macroprocessor, a
// two-pass assembler for a pseudo-machine, and CPU scheduling.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/ossim/asm"
	"github.com/ezrec/ossim/macro"
	"github.com/ezrec/ossim/paging"
	"github.com/ezrec/ossim/sched"
)

// The baked-in sample inputs. Each simulation is a pure function of its
// input, so two runs print byte-identical output.
var pageRefs = []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}

var macroSource = []string{
	"MAIN START 1000",
	"LOOP LOAD X",
	"CALC MACRO &A,&B",
	"&A ADD &B",
	" SUB &B",
	"MEND",
	" STORE Y",
	"INIT MACRO &X,&Y,&Z",
	"&X LOAD &Y",
	" STORE &Z",
	"MEND",
	" INIT TEMP,ONE,TWO",
	" CALC X,Y",
	" CALC Y,Z",
	"X RESW 1",
	"Y RESW 1",
	"Z RESW 1",
	"TEMP RESW 1",
	"ONE WORD 1",
	"TWO WORD 2",
	" END",
}

var asmSource = []asm.Source{
	{Label: "COPY", Opcode: "START", Operand: "1000"},
	{Label: "LOOP", Opcode: "LDA", Operand: "TEN"},
	{Opcode: "ADD", Operand: "ONE"},
	{Opcode: "JLT", Operand: "LOOP"},
	{Opcode: "STA", Operand: "RESULT"},
	{Opcode: "LDA", Operand: "=C'EOF'"},
	{Label: "TEN", Opcode: "WORD", Operand: "10"},
	{Label: "ONE", Opcode: "RESW", Operand: "1"},
	{Label: "RESULT", Opcode: "RESB", Operand: "3"},
	{Opcode: "END"},
}

var processes = []sched.Process{
	{Pid: 1, Arrival: 0, Burst: 5, Priority: 2},
	{Pid: 2, Arrival: 1, Burst: 3, Priority: 1},
	{Pid: 3, Arrival: 2, Burst: 8, Priority: 3},
	{Pid: 4, Arrival: 3, Burst: 6, Priority: 2},
}

// saveLines materializes one of the two-pass text buffers as a file.
func saveLines(outdir, name string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(filepath.Join(outdir, name), []byte(data), 0o644)
}

func runPaging(w io.Writer, frames int) error {
	for _, policy := range []paging.Policy{&paging.Fifo{}, &paging.Lru{}, paging.Optimal{}} {
		trace, err := paging.Simulate(policy, pageRefs, frames)
		if err != nil {
			return err
		}
		trace.Report(w)
	}
	return nil
}

func runMacro(w io.Writer, outdir string) error {
	tables, intermediate, err := macro.PassOne(macroSource)
	if err != nil {
		return err
	}
	expanded := tables.Expand(intermediate)

	fmt.Fprintf(w, "\n--- Macro Intermediate File ---\n")
	for _, line := range intermediate {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n--- Macro Expanded Output ---\n")
	for _, line := range expanded {
		fmt.Fprintln(w, line)
	}

	if len(outdir) > 0 {
		if err := saveLines(outdir, "macro_intermediate.txt", intermediate); err != nil {
			return err
		}
		if err := saveLines(outdir, "macro_expanded.txt", expanded); err != nil {
			return err
		}
	}
	return nil
}

func runAsm(w io.Writer, outdir string, verbose bool) error {
	assembler := &asm.Assembler{Verbose: verbose}
	unit, err := assembler.PassOne(asmSource)
	if err != nil {
		return err
	}
	records, diags := unit.Records()

	fmt.Fprintf(w, "\n")
	unit.Report(w)
	fmt.Fprintf(w, "\n--- Generated Object Program ---\n")
	for _, record := range records {
		fmt.Fprintln(w, record)
	}
	for _, diag := range diags {
		fmt.Fprintln(w, diag)
	}

	if len(outdir) > 0 {
		listing := []string{}
		for _, line := range unit.Intermediate {
			listing = append(listing, fmt.Sprintf("[%04X] %v %v %v", line.LC, line.Label, line.Opcode, line.Operand))
		}
		if err := saveLines(outdir, "asm_intermediate.txt", listing); err != nil {
			return err
		}
		if err := saveLines(outdir, "asm_object.txt", records); err != nil {
			return err
		}
	}
	return nil
}

func runSched(w io.Writer, quantum int) error {
	for _, result := range []sched.Result{
		sched.Fcfs(processes),
		sched.Sjf(processes),
		sched.PrioritySched(processes),
	} {
		result.Report(w)
	}

	result, err := sched.RoundRobin(processes, quantum)
	if err != nil {
		return err
	}
	result.Report(w)
	return nil
}

func main() {
	var run string
	var frames int
	var quantum int
	var outdir string
	var verbose bool

	flag.StringVar(&run, "run", "all", "Simulation to run: all, paging, macro, asm, or sched")
	flag.IntVar(&frames, "frames", 3, "Page frame capacity")
	flag.IntVar(&quantum, "quantum", 2, "Round-robin time quantum")
	flag.StringVar(&outdir, "outdir", "", "Directory to write the intermediate and output buffers to")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	w := os.Stdout

	var err error
	switch run {
	case "all":
		err = runPaging(w, frames)
		if err == nil {
			err = runMacro(w, outdir)
		}
		if err == nil {
			err = runAsm(w, outdir, verbose)
		}
		if err == nil {
			err = runSched(w, quantum)
		}
	case "paging":
		err = runPaging(w, frames)
	case "macro":
		err = runMacro(w, outdir)
	case "asm":
		err = runAsm(w, outdir, verbose)
	case "sched":
		err = runSched(w, quantum)
	default:
		log.Fatalf("%v: Unknown simulation: %v", os.Args[0], run)
	}
	if err != nil {
		log.Fatal(err)
	}
}
