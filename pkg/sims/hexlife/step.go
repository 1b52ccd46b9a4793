package hexlife

import "golang.org/x/sync/errgroup"

// minChunk is the smallest run of cells handed to one goroutine.
const minChunk = 512

// Step advances the world by one generation. Every cell's next state is
// computed from the current generation only; the result is swapped in once
// all cells are done.
func (w *World) Step() {
	n := len(w.cur)
	if w.workers <= 1 || n < 2*minChunk {
		w.stepRange(0, n)
	} else {
		chunk := max((n+w.workers-1)/w.workers, minChunk)
		var g errgroup.Group
		g.SetLimit(w.workers)
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			g.Go(func() error {
				w.stepRange(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.gen++
}

func (w *World) stepRange(lo, hi int) {
	cur := w.cur
	for i := lo; i < hi; i++ {
		alive := 0
		for _, j := range w.nbrs[i] {
			if cur[j] != Off {
				alive++
			}
		}
		w.nxt[i] = transition(w.survival, w.birth, w.maxAge, cur[i], alive)
	}
}

// Transition returns the next state of a cell in state s with alive live
// neighbors under rule r.
func Transition(r Rule, s State, alive int) State {
	return transition(maskOf(r.Survival), maskOf(r.Birth), r.MaxAge(), s, alive)
}

func transition(survival, birth countMask, maxAge, s State, alive int) State {
	if s.IsOn() {
		if survival.has(alive) {
			if s < maxAge {
				return s + 1
			}
			return maxAge
		}
		return s - 1
	}
	if birth.has(alive) {
		return 1
	}
	return Off
}
