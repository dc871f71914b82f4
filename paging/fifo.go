package paging

// Fifo evicts the earliest-admitted page, tracked in an arrival queue.
type Fifo struct {
	order []int
}

func (f *Fifo) Name() string { return "FIFO" }

func (f *Fifo) Hit(page int) {
	// nothing to do for FIFO
}

func (f *Fifo) Miss(page int) {
	f.order = append(f.order, page)
}

func (f *Fifo) Victim(resident []int, future []int) int {
	victim := f.order[0]
	f.order = f.order[1:]
	return victim
}
