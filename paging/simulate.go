// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package paging

import (
	"fmt"
	"io"
	"slices"
)

// Step records the outcome of a single page reference.
type Step struct {
	Page   int   // Referenced page.
	Fault  bool  // True if the reference faulted.
	Frames []int // Frame contents after the fault. Nil on a hit.
}

// Trace is the full record of one simulation run.
type Trace struct {
	Policy   string // Name of the policy that produced the trace.
	Steps    []Step // One entry per reference.
	Faults   int    // Total fault count.
	Resident []int  // Final frame contents.
}

// Simulate replays refs against policy over capacity frames.
//
// A fault is any reference to a non-resident page. Below capacity the page
// is appended; at capacity the policy picks a victim and the new page
// replaces the victim by value, wherever it sits in the frame list.
func Simulate(policy Policy, refs []int, capacity int) (trace Trace, err error) {
	if capacity < 1 {
		err = ErrCapacityInvalid
		return
	}

	trace.Policy = policy.Name()
	frames := make([]int, 0, capacity)

	for n, page := range refs {
		if slices.Contains(frames, page) {
			policy.Hit(page)
			trace.Steps = append(trace.Steps, Step{Page: page})
			continue
		}

		if len(frames) < capacity {
			frames = append(frames, page)
		} else {
			victim := policy.Victim(frames, refs[n+1:])
			for i, held := range frames {
				if held == victim {
					frames[i] = page
				}
			}
		}
		policy.Miss(page)

		trace.Faults++
		trace.Steps = append(trace.Steps, Step{Page: page, Fault: true, Frames: slices.Clone(frames)})
	}

	trace.Resident = slices.Clone(frames)

	return
}

// Report writes the per-reference fault log and the fault total.
func (trace *Trace) Report(w io.Writer) {
	fmt.Fprintf(w, "\n=== %v Page Replacement ===\n", trace.Policy)
	for _, step := range trace.Steps {
		if !step.Fault {
			fmt.Fprintf(w, "Page %v -> No page fault\n", step.Page)
			continue
		}
		fmt.Fprintf(w, "Page %v -> ", step.Page)
		for _, frame := range step.Frames {
			fmt.Fprintf(w, "%v ", frame)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total Page Faults = %v\n", trace.Faults)
}
