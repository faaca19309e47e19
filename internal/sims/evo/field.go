package evo

import "evo-grid/internal/core"

// stepField runs the diffusion and decay pass. It reads only the previous
// tick's substance slots and accumulates into fresh buffers before writing
// back, so the result does not depend on cell visit order.
//
// Per source cell: kept = amount*(1-DecayFactor); each in-bounds orthogonal
// neighbor receives kept*DiffusionFraction and the source retains the rest.
// Outflow targets only in-bounds neighbors, so with zero decay the total
// mass is conserved even at the bounded edges.
func (w *World) stepField() {
	cells := w.grid.Cells()
	p := w.cfg.Params
	keep := float32(1 - p.DecayFactor)
	frac := float32(p.DiffusionFraction)

	for i := range w.fieldNext {
		w.fieldNext[i] = core.Substance{}
		w.fieldHas[i] = false
		w.fieldBest[i] = 0
	}

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			if !cells[idx].HasSubstance {
				continue
			}
			src := cells[idx].Substance
			kept := src.Amount * keep
			if kept <= 0 {
				continue
			}
			w.neighbors = w.grid.OrthNeighbors(x, y, w.neighbors[:0])
			share := kept * frac
			remain := kept - share*float32(len(w.neighbors))

			w.depositField(cells, idx, remain, src.Color)
			if share > 0 {
				for _, pt := range w.neighbors {
					w.depositField(cells, w.grid.Index(pt.X, pt.Y), share, src.Color)
				}
			}
		}
	}

	minAmt := float32(p.MinSubstance)
	for i := range cells {
		if !w.fieldHas[i] || w.fieldNext[i].Amount <= minAmt {
			cells[i].HasSubstance = false
			cells[i].Substance = core.Substance{}
			continue
		}
		s := w.fieldNext[i]
		s.Amount = clampAmount(s.Amount)
		cells[i].Substance = s
		cells[i].HasSubstance = true
	}
}

// depositField accumulates amt into the destination buffer. A cell that
// already held substance keeps its own color; a previously empty cell
// adopts the color of its largest single contributor, which keeps the
// phase deterministic without consuming randomness.
func (w *World) depositField(cells []core.Cell, idx int, amt float32, col core.RGB) {
	if amt <= 0 {
		return
	}
	w.fieldNext[idx].Amount += amt
	w.fieldHas[idx] = true
	if cells[idx].HasSubstance {
		w.fieldNext[idx].Color = cells[idx].Substance.Color
		return
	}
	if amt > w.fieldBest[idx] {
		w.fieldBest[idx] = amt
		w.fieldNext[idx].Color = col
	}
}
