package paging

import "slices"

// Optimal evicts the resident page whose next use lies farthest in the
// remaining reference string. A page with no future use at all is evicted
// outright, first one found.
type Optimal struct{}

func (o Optimal) Name() string { return "Optimal" }

func (o Optimal) Hit(page int) {}

func (o Optimal) Miss(page int) {}

func (o Optimal) Victim(resident []int, future []int) int {
	victim := -1
	farthest := 0
	for _, page := range resident {
		next := slices.Index(future, page)
		if next < 0 {
			return page
		}
		if next > farthest {
			farthest = next
			victim = page
		}
	}
	if victim < 0 {
		// Only reachable when the sole resident page recurs immediately.
		victim = resident[0]
	}
	return victim
}
