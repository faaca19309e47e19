package evo

import (
	"errors"
	"math"
	"slices"
	"testing"

	"evo-grid/internal/core"
)

// inertConfig disables every stochastic rule and all seeding so tests can
// stage exact scenarios by hand.
func inertConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.DecayFactor = 0
	cfg.Params.DiffusionFraction = 0
	cfg.Params.MinSubstance = 0
	cfg.Params.DeathChance = 0
	cfg.Params.BirthChance = 0
	cfg.Params.MoveChance = 0
	cfg.Params.DepositChance = 0
	cfg.Params.ConsumeAmount = 0
	cfg.Params.CreatureChance = 0
	cfg.Params.SubstancePatchCount = 0
	return cfg
}

func mustWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return w
}

func placeCreature(t *testing.T, w *World, x, y int, color core.RGB) {
	t.Helper()
	if err := w.Grid().Set(x, y, core.Cell{Creature: core.Creature{Color: color}, HasCreature: true}); err != nil {
		t.Fatalf("Set(%d, %d): %v", x, y, err)
	}
}

func snapshotCells(w *World) []core.Cell {
	return append([]core.Cell(nil), w.Cells()...)
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	if _, err := New(0, 10, 1); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("New(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := New(10, 0, 1); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("New(10, 0) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := New(10, 10, 1); err != nil {
		t.Fatalf("New(10, 10) failed: %v", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	world := mustWorld(t, cfg)
	world.Reset(0)

	initial := snapshotCells(world)
	if len(initial) != 32*24 {
		t.Fatalf("cell count = %d, want %d", len(initial), 32*24)
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	world.Cells()[0].HasCreature = true
	world.Cells()[1].Substance.Amount = 1

	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	seeded := snapshotCells(world)
	world.Reset(777)
	if !slices.Equal(seeded, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different initial states")
	}
}

func TestStepTraceDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	cfg.Seed = 5

	a := mustWorld(t, cfg)
	b := mustWorld(t, cfg)
	a.Reset(5)
	b.Reset(5)

	for step := 0; step < 20; step++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("traces diverged at step %d", step+1)
		}
	}
	if a.Tick() != 20 {
		t.Fatalf("tick counter = %d, want 20", a.Tick())
	}
}

func TestIsolatedCreatureStaysPut(t *testing.T) {
	world := mustWorld(t, inertConfig(3, 3))
	color := core.RGB{200, 40, 40}
	placeCreature(t, world, 1, 1, color)

	world.Step()

	cells := world.Cells()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := cells[world.Grid().Index(x, y)]
			if c.HasSubstance {
				t.Fatalf("cell (%d, %d) reports substance in an inert world", x, y)
			}
			wantCreature := x == 1 && y == 1
			if c.HasCreature != wantCreature {
				t.Fatalf("cell (%d, %d) creature = %v, want %v", x, y, c.HasCreature, wantCreature)
			}
			if wantCreature && c.Creature.Color != color {
				t.Fatalf("creature color = %v, want %v", c.Creature.Color, color)
			}
		}
	}
}

func TestMoveTieBreakFirstMoverWins(t *testing.T) {
	cfg := inertConfig(3, 1)
	cfg.Params.MoveChance = 1
	world := mustWorld(t, cfg)

	colorA := core.RGB{255, 0, 0}
	colorB := core.RGB{0, 0, 255}
	placeCreature(t, world, 0, 0, colorA)
	placeCreature(t, world, 2, 0, colorB)

	world.Step()

	cells := world.Cells()
	if cells[0].HasCreature {
		t.Fatal("first mover did not vacate its source cell")
	}
	if !cells[1].HasCreature || cells[1].Creature.Color != colorA {
		t.Fatalf("contested cell holds %+v, want creature %v", cells[1], colorA)
	}
	if !cells[2].HasCreature || cells[2].Creature.Color != colorB {
		t.Fatalf("blocked mover should stay put, cell = %+v", cells[2])
	}
}

func TestPopulationConservedWhenOnlyMoving(t *testing.T) {
	cfg := inertConfig(32, 32)
	cfg.Params.CreatureChance = 0.1
	cfg.Params.MoveChance = 1
	cfg.Seed = 9

	world := mustWorld(t, cfg)
	world.Reset(9)
	want := world.Population()
	if want == 0 {
		t.Fatal("seeding produced no creatures")
	}

	for step := 0; step < 10; step++ {
		world.Step()
		if got := world.Population(); got != want {
			t.Fatalf("population after step %d = %d, want %d", step+1, got, want)
		}
	}
}

func TestReproductionAddsOneNeighbor(t *testing.T) {
	cfg := inertConfig(3, 3)
	cfg.Params.BirthChance = 1
	cfg.Params.ColorDrift = 0
	world := mustWorld(t, cfg)

	color := core.RGB{10, 200, 10}
	placeCreature(t, world, 1, 1, color)

	world.Step()

	if got := world.Population(); got != 2 {
		t.Fatalf("population = %d, want 2", got)
	}
	cells := world.Cells()
	center := cells[world.Grid().Index(1, 1)]
	if !center.HasCreature || center.Creature.Color != color {
		t.Fatalf("parent missing from center: %+v", center)
	}
	for i, c := range cells {
		if c.HasCreature && c.Creature.Color != color {
			t.Fatalf("cell %d: zero drift must copy the parent color, got %v", i, c.Creature.Color)
		}
	}

	// The newborn was resolved this tick; it must not act again.
	world.Step()
	if got := world.Population(); got != 4 {
		t.Fatalf("population after second step = %d, want 4", got)
	}
}

func TestDeathClearsOccupant(t *testing.T) {
	cfg := inertConfig(3, 3)
	cfg.Params.DeathChance = 1
	world := mustWorld(t, cfg)
	placeCreature(t, world, 1, 1, core.RGB{1, 2, 3})

	world.Step()

	if got := world.Population(); got != 0 {
		t.Fatalf("population = %d, want 0", got)
	}
	if c := world.Cells()[world.Grid().Index(1, 1)]; c != (core.Cell{}) {
		t.Fatalf("center cell not cleared: %+v", c)
	}
}

func TestDepositCreatesSubstance(t *testing.T) {
	cfg := inertConfig(3, 3)
	cfg.Params.DepositChance = 1
	cfg.Params.DepositAmount = 0.3
	world := mustWorld(t, cfg)

	color := core.RGB{40, 40, 220}
	placeCreature(t, world, 1, 1, color)

	world.Step()

	c := world.Cells()[world.Grid().Index(1, 1)]
	if !c.HasSubstance {
		t.Fatal("creature did not deposit substance in its own cell")
	}
	if c.Substance.Color != color {
		t.Fatalf("deposit color = %v, want creature color %v", c.Substance.Color, color)
	}
	if math.Abs(float64(c.Substance.Amount)-0.3) > 1e-6 {
		t.Fatalf("deposit amount = %v, want 0.3", c.Substance.Amount)
	}
}

func TestConsumeReducesSubstance(t *testing.T) {
	cfg := inertConfig(3, 3)
	cfg.Params.ConsumeAmount = 0.2
	world := mustWorld(t, cfg)

	color := core.RGB{40, 220, 40}
	if err := world.Grid().Set(1, 1, core.Cell{
		Creature:     core.Creature{Color: color},
		HasCreature:  true,
		Substance:    core.Substance{Color: color, Amount: 0.5},
		HasSubstance: true,
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	world.Step()

	c := world.Cells()[world.Grid().Index(1, 1)]
	if !c.HasSubstance {
		t.Fatal("substance slot emptied although amount stayed positive")
	}
	if math.Abs(float64(c.Substance.Amount)-0.3) > 1e-6 {
		t.Fatalf("amount after consuming = %v, want 0.3", c.Substance.Amount)
	}

	world.Step()
	world.Step()
	if c := world.Cells()[world.Grid().Index(1, 1)]; c.HasSubstance {
		t.Fatalf("substance should be fully consumed, amount = %v", c.Substance.Amount)
	}
}

func TestCellsIdempotentRead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	world := mustWorld(t, cfg)
	world.Reset(0)

	if world.NumCells() != 256 {
		t.Fatalf("NumCells = %d, want 256", world.NumCells())
	}
	first := snapshotCells(world)
	second := snapshotCells(world)
	if !slices.Equal(first, second) {
		t.Fatal("two reads between steps disagree")
	}

	world.Step()
	first = snapshotCells(world)
	second = snapshotCells(world)
	if !slices.Equal(first, second) {
		t.Fatal("two reads after a step disagree")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	world := mustWorld(t, DefaultConfig())

	if !world.SetFloatParameter("move_chance", 1.5) {
		t.Fatal("expected move chance to be adjustable")
	}
	if got := world.cfg.Params.MoveChance; got != 1 {
		t.Fatalf("move chance = %v, want clamp to 1", got)
	}
	if !world.SetFloatParameter("diffusion_fraction", 0.9) {
		t.Fatal("expected diffusion fraction to be adjustable")
	}
	if got := world.cfg.Params.DiffusionFraction; got != 0.25 {
		t.Fatalf("diffusion fraction = %v, want clamp to 0.25", got)
	}
	if world.SetFloatParameter("no_such_key", 0.5) {
		t.Fatal("unknown key must not be accepted")
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	world := mustWorld(t, DefaultConfig())

	if !world.SetIntParameter("color_drift", 400) {
		t.Fatal("expected color drift to be adjustable")
	}
	if got := world.cfg.Params.ColorDrift; got != 255 {
		t.Fatalf("color drift = %d, want clamp to 255", got)
	}
	if world.SetIntParameter("move_chance", 1) {
		t.Fatal("float key must not be accepted by the int setter")
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "64",
		"h":                  "48",
		"seed":               "12345",
		"move_chance":        "0.75",
		"diffusion_fraction": "0.5", // above the per-neighbor cap, ignored
		"color_drift":        "3",
	})
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Fatalf("dimensions = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 12345 {
		t.Fatalf("seed = %d, want 12345", cfg.Seed)
	}
	if cfg.Params.MoveChance != 0.75 {
		t.Fatalf("move chance = %v, want 0.75", cfg.Params.MoveChance)
	}
	if cfg.Params.DiffusionFraction != DefaultConfig().Params.DiffusionFraction {
		t.Fatalf("invalid diffusion fraction override was accepted: %v", cfg.Params.DiffusionFraction)
	}
	if cfg.Params.ColorDrift != 3 {
		t.Fatalf("color drift = %d, want 3", cfg.Params.ColorDrift)
	}
}
