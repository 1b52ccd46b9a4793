// Command rule-sweep runs every rule against several seeds and prints the
// liveliest combinations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"hexlife/internal/sweep"
	"hexlife/pkg/sims/hexlife"
)

func main() {
	radius := flag.Int("radius", 20, "disc radius in cells")
	steps := flag.Int("steps", 240, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rulesFlag := flag.String("rules", "", "comma-separated rules; empty sweeps every preset plus a birth/survival grid")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	rules, err := parseRules(*rulesFlag)
	if err != nil {
		log.Fatalf("rules: %v", err)
	}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}
	scenarios := sweep.Grid(rules, seedList)

	fmt.Printf("Sweeping %d scenarios (%d rules x %d seeds, %d workers, %d steps, radius %d)\n",
		len(scenarios), len(rules), len(seedList), *workers, *steps, *radius)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, scenarios, sweep.Options{Radius: *radius, Steps: *steps, Workers: *workers})
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	sweep.Rank(results)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		status := "alive"
		if res.ExtinctAt > 0 {
			status = fmt.Sprintf("extinct@%d", res.ExtinctAt)
		}
		fmt.Printf("%2d) %-22s activity=%.3f final=%d peak=%d/%d %s\n",
			i+1, res.Scenario, res.Activity, res.FinalAlive, res.PeakAlive, res.Cells, status)
	}
}

func parseRules(s string) ([]hexlife.Rule, error) {
	if s != "" {
		var out []hexlife.Rule
		for _, part := range strings.Split(s, ",") {
			r, err := hexlife.ParseRule(part)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	}

	var out []hexlife.Rule
	for _, name := range hexlife.Presets() {
		r, err := hexlife.Preset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	for _, survival := range []string{"1", "2", "12", "23", "34"} {
		for _, birth := range []string{"2", "24", "3"} {
			for _, states := range []int{3, 5} {
				out = append(out, hexlife.MustParseRule(fmt.Sprintf("%s/%s/%d", survival, birth, states)))
			}
		}
	}
	return out, nil
}
