// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package paging

// Policy selects eviction victims for a fixed-capacity frame set.
//
// Simulate drives the policy: Hit on every reference to a resident page,
// Victim then Miss on every fault. Victim is only called when the frame
// set is full.
type Policy interface {
	// Name of the policy, for report headers.
	Name() string
	// Hit records a reference to a page already resident.
	Hit(page int)
	// Miss records the admission of a page into the frame set.
	Miss(page int)
	// Victim returns the resident page to evict. future holds the
	// references that follow the faulting one, in order.
	Victim(resident []int, future []int) int
}
