package sched

import "slices"

// Fcfs runs first-come-first-served: processes execute to completion in
// arrival order.
func Fcfs(procs []Process) Result {
	run := slices.Clone(procs)
	slices.SortStableFunc(run, byArrival)

	clock := 0
	for n := range run {
		p := &run[n]
		clock = max(clock, p.Arrival)
		clock += p.Burst
		p.Completion = clock
	}

	return finish("FCFS", run)
}
