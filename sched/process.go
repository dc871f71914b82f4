// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sched

import (
	"cmp"
	"fmt"
	"io"
)

// Process is one schedulable task and its computed metrics.
type Process struct {
	Pid        int
	Arrival    int
	Burst      int
	Priority   int // Lower value means higher priority.
	Completion int
	Turnaround int
	Waiting    int

	remaining int // Burst left to run, during preemptive policies.
}

// byArrival orders processes by arrival time.
func byArrival(a, b Process) int {
	return cmp.Compare(a.Arrival, b.Arrival)
}

// Result is one policy's computed schedule.
type Result struct {
	Name          string
	Processes     []Process
	AvgTurnaround float64
	AvgWaiting    float64
}

// finish derives turnaround and waiting times from the completion times
// and averages them.
func finish(name string, run []Process) (result Result) {
	result.Name = name

	for n := range run {
		p := &run[n]
		p.Turnaround = p.Completion - p.Arrival
		p.Waiting = p.Turnaround - p.Burst
		result.AvgTurnaround += float64(p.Turnaround)
		result.AvgWaiting += float64(p.Waiting)
	}

	result.AvgTurnaround /= float64(len(run))
	result.AvgWaiting /= float64(len(run))
	result.Processes = run

	return
}

// Report writes the per-process table and the averaged metrics.
func (result *Result) Report(w io.Writer) {
	fmt.Fprintf(w, "\n=== %v Scheduling ===\n", result.Name)
	fmt.Fprintf(w, "PID\tAT\tBT\tPR\tCT\tTAT\tWT\n")
	for _, p := range result.Processes {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			p.Pid, p.Arrival, p.Burst, p.Priority, p.Completion, p.Turnaround, p.Waiting)
	}
	fmt.Fprintf(w, "Average TAT: %v\n", result.AvgTurnaround)
	fmt.Fprintf(w, "Average WT : %v\n", result.AvgWaiting)
}
