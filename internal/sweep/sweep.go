// Package sweep runs many rule/seed scenarios concurrently and ranks them by
// how lively they stay.
package sweep

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"hexlife/pkg/core"
	"hexlife/pkg/sims/hexlife"
)

// Scenario is one rule seeded one way.
type Scenario struct {
	Rule hexlife.Rule
	Seed int64
}

func (s Scenario) String() string { return fmt.Sprintf("rule=%s seed=%d", s.Rule, s.Seed) }

// Options controls every scenario in a sweep.
type Options struct {
	Radius  int
	Steps   int
	Workers int
}

// Result summarizes a scenario run.
type Result struct {
	Scenario Scenario
	Cells    int
	Steps    int

	FinalAlive int
	PeakAlive  int
	// Activity is the mean fraction of cells that changed state per step.
	Activity  float64
	ExtinctAt int // generation at which no cell was alive, 0 if never
}

// Grid returns every rule paired with every seed.
func Grid(rules []hexlife.Rule, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(rules)*len(seeds))
	for _, r := range rules {
		for _, s := range seeds {
			out = append(out, Scenario{Rule: r, Seed: s})
		}
	}
	return out
}

// Run executes scenarios on up to opts.Workers goroutines. Results keep the
// order of scenarios.
func Run(ctx context.Context, scenarios []Scenario, opts Options) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, sc, opts)
			if err != nil {
				return fmt.Errorf("%v: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, sc Scenario, opts Options) (Result, error) {
	world, err := hexlife.New(hexlife.Config{Radius: opts.Radius, Rule: sc.Rule}, core.NewRNG(sc.Seed).Source())
	if err != nil {
		return Result{}, err
	}
	res := Result{Scenario: sc, Cells: world.Len()}
	prev := make([]hexlife.State, world.Len())
	changed := 0
	for step := 0; step < opts.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		copy(prev, world.States())
		world.Step()
		alive := 0
		for i, s := range world.States() {
			if s != prev[i] {
				changed++
			}
			if s.IsOn() {
				alive++
			}
		}
		res.Steps++
		res.FinalAlive = alive
		res.PeakAlive = max(res.PeakAlive, alive)
		if alive == 0 {
			res.ExtinctAt = step + 1
			break
		}
	}
	if res.Steps > 0 {
		res.Activity = float64(changed) / float64(res.Steps*res.Cells)
	}
	return res, nil
}

// Rank orders results with surviving scenarios first, then by activity.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.ExtinctAt == 0) != (b.ExtinctAt == 0) {
			return a.ExtinctAt == 0
		}
		return a.Activity > b.Activity
	})
}
