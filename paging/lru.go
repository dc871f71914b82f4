package paging

import "math"

// Lru evicts the page with the oldest last-reference stamp, found by a
// scan of the resident set at eviction time.
type Lru struct {
	clock    int
	lastUsed map[int]int
}

func (l *Lru) Name() string { return "LRU" }

func (l *Lru) stamp(page int) {
	if l.lastUsed == nil {
		l.lastUsed = make(map[int]int, 16)
	}
	l.clock++
	l.lastUsed[page] = l.clock
}

func (l *Lru) Hit(page int) {
	l.stamp(page)
}

func (l *Lru) Miss(page int) {
	l.stamp(page)
}

func (l *Lru) Victim(resident []int, future []int) int {
	victim := resident[0]
	oldest := math.MaxInt
	for _, page := range resident {
		if l.lastUsed[page] < oldest {
			oldest = l.lastUsed[page]
			victim = page
		}
	}
	return victim
}
