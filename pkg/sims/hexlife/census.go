package hexlife

// Census summarizes one generation.
type Census struct {
	Generation uint64
	// Counts[s] is the number of cells in state s; Counts[0] is Off.
	Counts []int
}

// Alive returns the number of live cells at any vitality.
func (c Census) Alive() int {
	total := 0
	for s := 1; s < len(c.Counts); s++ {
		total += c.Counts[s]
	}
	return total
}

// Off returns the number of dormant cells.
func (c Census) Off() int {
	if len(c.Counts) == 0 {
		return 0
	}
	return c.Counts[0]
}

// Census counts the cells of the latest generation by state.
func (w *World) Census() Census {
	counts := make([]int, w.rule.States)
	for _, s := range w.cur {
		counts[s]++
	}
	return Census{Generation: w.gen, Counts: counts}
}
