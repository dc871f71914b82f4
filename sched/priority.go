package sched

import (
	"math"
	"slices"
)

// PrioritySched runs non-preemptive priority scheduling. Dispatch picks
// the arrived, undispatched process with the smallest priority value and
// runs it to completion; the clock idles forward when nothing has arrived.
func PrioritySched(procs []Process) Result {
	run := slices.Clone(procs)
	slices.SortStableFunc(run, byArrival)

	dispatched := make([]bool, len(run))
	clock := 0
	done := 0
	for done < len(run) {
		pick := -1
		best := math.MaxInt
		for n := range run {
			if !dispatched[n] && run[n].Arrival <= clock && run[n].Priority < best {
				best = run[n].Priority
				pick = n
			}
		}
		if pick < 0 {
			clock++
			continue
		}

		clock += run[pick].Burst
		run[pick].Completion = clock
		dispatched[pick] = true
		done++
	}

	return finish("Priority (Non-Preemptive)", run)
}
