package sched

import "slices"

// RoundRobin runs preemptive round-robin with a fixed quantum. Arrivals
// are admitted to the ready queue before each dispatch and again right
// after the slice runs, so a process arriving mid-slice queues behind the
// re-queue of the one that was running. A process finishing within its
// slice is not re-queued.
func RoundRobin(procs []Process, quantum int) (result Result, err error) {
	if quantum < 1 {
		err = ErrQuantumInvalid
		return
	}

	run := slices.Clone(procs)
	for n := range run {
		run[n].remaining = run[n].Burst
	}

	var ready []int
	admitted := make([]bool, len(run))
	admit := func(clock int) {
		for n := range run {
			if !admitted[n] && run[n].Arrival <= clock {
				ready = append(ready, n)
				admitted[n] = true
			}
		}
	}

	clock := 0
	done := 0
	for done < len(run) {
		admit(clock)
		if len(ready) == 0 {
			clock++
			continue
		}

		n := ready[0]
		ready = ready[1:]

		slice := min(quantum, run[n].remaining)
		run[n].remaining -= slice
		clock += slice
		admit(clock)

		if run[n].remaining == 0 {
			run[n].Completion = clock
			done++
		} else {
			ready = append(ready, n)
		}
	}

	result = finish("Round Robin", run)
	return
}
