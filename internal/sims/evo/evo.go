package evo

import (
	"evo-grid/internal/core"
)

// World stores all state for the evo simulation: the cell grid, the
// deterministic random source, and the scratch buffers for the two tick
// phases. Nothing outside this package mutates the grid.
type World struct {
	cfg Config

	w, h int
	grid *core.Grid

	// Field-phase double buffer; see field.go.
	fieldNext []core.Substance
	fieldHas  []bool
	fieldBest []float32

	// Occupant-phase bookkeeping: positions already resolved this tick.
	processed []bool
	neighbors []core.Point

	tick uint64

	rng *core.RNG
}

// New returns an evo world with the given dimensions and seed using the
// default rule parameters.
func New(w, h int, seed int64) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = seed
	return NewWithConfig(cfg)
}

// NewWithConfig returns an evo world configured from the provided options.
// The only user-facing failure is degenerate dimensions.
func NewWithConfig(cfg Config) (*World, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:       cfg,
		w:         cfg.Width,
		h:         cfg.Height,
		grid:      grid,
		fieldNext: make([]core.Substance, total),
		fieldHas:  make([]bool, total),
		fieldBest: make([]float32, total),
		processed: make([]bool, total),
		neighbors: make([]core.Point, 0, 8),
		rng:       core.NewRNG(cfg.Seed),
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "evo" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Grid exposes the underlying grid.
func (w *World) Grid() *core.Grid { return w.grid }

// Cells exposes the current cells in row-major order. The view is valid
// until the next Step; callers must treat it as read-only.
func (w *World) Cells() []core.Cell { return w.grid.Cells() }

// NumCells returns width*height.
func (w *World) NumCells() int { return w.grid.NumCells() }

// Tick returns the number of completed steps since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Population counts the live creatures.
func (w *World) Population() int {
	n := 0
	cells := w.grid.Cells()
	for i := range cells {
		if cells[i].HasCreature {
			n++
		}
	}
	return n
}

// SubstanceMass sums the substance amounts over all cells.
func (w *World) SubstanceMass() float64 {
	var sum float64
	cells := w.grid.Cells()
	for i := range cells {
		if cells[i].HasSubstance {
			sum += float64(cells[i].Substance.Amount)
		}
	}
	return sum
}

// Reset rebuilds the initial world using deterministic randomness. A zero
// seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.grid.Clear()
	w.tick = 0

	w.sprinkleCreatures()
	w.seedSubstancePatches()
}

// Step advances the simulation by one synchronous tick: the diffusion and
// decay pass over the substance field, then the occupant resolution pass.
func (w *World) Step() {
	w.stepField()
	w.stepOccupants()
	w.tick++
}

// stepOccupants resolves every creature once, scanning in row-major order.
// A creature that moves or is born into a not-yet-visited cell is marked
// processed so it is not resolved again this tick. Because the scan
// mutates in place, two creatures contending for the same empty cell
// resolve first-mover-wins in scan order.
func (w *World) stepOccupants() {
	cells := w.grid.Cells()
	for i := range w.processed {
		w.processed[i] = false
	}
	p := w.cfg.Params

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			if w.processed[idx] || !cells[idx].HasCreature {
				continue
			}
			w.processed[idx] = true

			if w.rng.Chance(p.DeathChance) {
				cells[idx].HasCreature = false
				cells[idx].Creature = core.Creature{}
				continue
			}

			// Feed from the local field, or leave a trace in it.
			if cells[idx].HasSubstance {
				amt := cells[idx].Substance.Amount - float32(p.ConsumeAmount)
				if amt <= float32(p.MinSubstance) {
					cells[idx].HasSubstance = false
					cells[idx].Substance = core.Substance{}
				} else {
					cells[idx].Substance.Amount = amt
				}
			} else if w.rng.Chance(p.DepositChance) {
				cells[idx].Substance = core.Substance{
					Color:  cells[idx].Creature.Color,
					Amount: clampAmount(float32(p.DepositAmount)),
				}
				cells[idx].HasSubstance = true
			}

			if w.rng.Chance(p.BirthChance) {
				if t, ok := w.pickEmptyNeighbor(x, y); ok {
					tIdx := w.grid.Index(t.X, t.Y)
					cells[tIdx].Creature = core.Creature{Color: w.driftColor(cells[idx].Creature.Color)}
					cells[tIdx].HasCreature = true
					w.processed[tIdx] = true
					// The parent stays put on the tick it reproduces.
					continue
				}
			}

			if w.rng.Chance(p.MoveChance) {
				if t, ok := w.pickEmptyNeighbor(x, y); ok {
					tIdx := w.grid.Index(t.X, t.Y)
					cells[tIdx].Creature = cells[idx].Creature
					cells[tIdx].HasCreature = true
					cells[idx].HasCreature = false
					cells[idx].Creature = core.Creature{}
					w.processed[tIdx] = true
				}
			}
		}
	}
}

// pickEmptyNeighbor selects a uniformly random unoccupied Moore neighbor
// of (x, y), if any.
func (w *World) pickEmptyNeighbor(x, y int) (core.Point, bool) {
	w.neighbors = w.grid.MooreNeighbors(x, y, w.neighbors[:0])
	cells := w.grid.Cells()
	n := 0
	for _, pt := range w.neighbors {
		if !cells[w.grid.Index(pt.X, pt.Y)].HasCreature {
			w.neighbors[n] = pt
			n++
		}
	}
	if n == 0 {
		return core.Point{}, false
	}
	if n == 1 {
		return w.neighbors[0], true
	}
	return w.neighbors[w.rng.IntN(n)], true
}

// driftColor derives an offspring color by shifting each channel within
// ±ColorDrift.
func (w *World) driftColor(c core.RGB) core.RGB {
	d := w.cfg.Params.ColorDrift
	if d <= 0 {
		return c
	}
	var out core.RGB
	for i := range c {
		v := int(c[i]) + w.rng.IntN(2*d+1) - d
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
	return out
}

func (w *World) randomColor() core.RGB {
	return core.RGB{w.rng.Byte(), w.rng.Byte(), w.rng.Byte()}
}

func (w *World) sprinkleCreatures() {
	chance := w.cfg.Params.CreatureChance
	if chance <= 0 {
		return
	}
	cells := w.grid.Cells()
	for i := range cells {
		if w.rng.Chance(chance) {
			cells[i].Creature = core.Creature{Color: w.randomColor()}
			cells[i].HasCreature = true
		}
	}
}

func (w *World) seedSubstancePatches() {
	count := w.cfg.Params.SubstancePatchCount
	if count <= 0 {
		return
	}
	minR := w.cfg.Params.SubstancePatchRadiusMin
	maxR := w.cfg.Params.SubstancePatchRadiusMax
	if minR < 0 {
		minR = 0
	}
	if maxR < minR {
		maxR = minR
	}
	den := w.cfg.Params.SubstancePatchDensity
	if den <= 0 {
		den = 1
	}
	cells := w.grid.Cells()
	for p := 0; p < count; p++ {
		x := w.rng.IntN(w.w)
		y := w.rng.IntN(w.h)
		color := w.randomColor()
		radius := minR
		if maxR > minR {
			radius += w.rng.IntN(maxR - minR + 1)
		}
		r2 := radius * radius
		for dy := -radius; dy <= radius; dy++ {
			yp := y + dy
			if yp < 0 || yp >= w.h {
				continue
			}
			for dx := -radius; dx <= radius; dx++ {
				xp := x + dx
				if xp < 0 || xp >= w.w {
					continue
				}
				if dx*dx+dy*dy > r2 {
					continue
				}
				if w.rng.Float64() > den {
					continue
				}
				idx := yp*w.w + xp
				cells[idx].Substance = core.Substance{
					Color:  color,
					Amount: clampAmount(w.rng.Float32()),
				}
				cells[idx].HasSubstance = true
			}
		}
	}
}

func clampAmount(a float32) float32 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

func init() {
	core.Register("evo", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		w, err := NewWithConfig(c)
		if err != nil {
			// FromMap only accepts positive dimensions, so this is a
			// programming error.
			panic(err)
		}
		return w
	})
}
