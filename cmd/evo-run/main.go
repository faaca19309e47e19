package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"evo-grid/internal/core"
	"evo-grid/internal/sims/evo"
)

func main() {
	width := flag.Int("w", 160, "grid width in cells")
	height := flag.Int("h", 120, "grid height in cells")
	seed := flag.Int64("seed", 1337, "simulation seed")
	steps := flag.Int("steps", 600, "ticks to simulate")
	every := flag.Int("every", 60, "report interval in ticks")
	tps := flag.Int("tps", 0, "pace the run at this tick rate (0 = flat out)")
	flag.Parse()

	cfg := evo.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed

	world, err := evo.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("building world: %v", err)
	}
	world.Reset(*seed)

	fmt.Printf("evo-grid %dx%d seed=%d steps=%d\n", *width, *height, *seed, *steps)
	report(world)

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	start := time.Now()
	for done := 0; done < *steps; {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		world.Step()
		done++
		if *every > 0 && done%*every == 0 {
			report(world)
		}
	}
	elapsed := time.Since(start)

	report(world)
	fmt.Printf("%d ticks in %s (%.0f ticks/s)\n",
		*steps, elapsed.Round(time.Millisecond), float64(*steps)/elapsed.Seconds())
}

func report(w *evo.World) {
	fmt.Printf("tick %-6d creatures %-6d substance %.2f\n",
		w.Tick(), w.Population(), w.SubstanceMass())
}
