// Package sched simulates CPU scheduling policies over a fixed process
// set: FCFS, preemptive SJF, non-preemptive Priority, and Round Robin.
//
// Every policy receives a private copy of the process list, computes each
// process's completion, turnaround, and waiting time, and returns a Result
// carrying the per-process table plus the averaged metrics. The caller's
// slice is never mutated.
package sched
