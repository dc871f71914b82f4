package sched

import (
	"math"
	"slices"
)

// Sjf runs shortest-job-first, preemptive, in discrete time units. At each
// unit the arrived, unfinished process with the least remaining time runs;
// ties go to the earliest in list order. Units with nothing arrived idle
// the clock forward.
func Sjf(procs []Process) Result {
	run := slices.Clone(procs)
	for n := range run {
		run[n].remaining = run[n].Burst
	}

	clock := 0
	done := 0
	for done < len(run) {
		pick := -1
		least := math.MaxInt
		for n := range run {
			p := &run[n]
			if p.Arrival <= clock && p.remaining > 0 && p.remaining < least {
				least = p.remaining
				pick = n
			}
		}
		if pick < 0 {
			clock++
			continue
		}

		run[pick].remaining--
		clock++
		if run[pick].remaining == 0 {
			run[pick].Completion = clock
			done++
		}
	}

	return finish("SJF (Preemptive)", run)
}
