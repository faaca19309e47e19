package render

import "evo-grid/internal/core"

// FillCellRGBA composites cells into buf, one RGBA pixel per cell in
// row-major order. The creature layer is opaque; the substance layer sits
// above it with alpha proportional to its amount. buf must hold
// 4*len(cells) bytes.
func FillCellRGBA(buf []byte, cells []core.Cell) {
	for i := range cells {
		px := CompositeCell(&cells[i])
		base := i * 4
		buf[base+0] = px[0]
		buf[base+1] = px[1]
		buf[base+2] = px[2]
		buf[base+3] = px[3]
	}
}

// CompositeCell renders one cell to an RGBA pixel. Empty cells come out
// fully transparent so the caller's clear color shows through.
func CompositeCell(c *core.Cell) [4]uint8 {
	var below [4]float32
	if c.HasCreature {
		col := c.Creature.Color
		below = [4]float32{frac(col[0]), frac(col[1]), frac(col[2]), 1}
	}
	var above [4]float32
	if c.HasSubstance {
		col := c.Substance.Color
		a := c.Substance.Amount
		if a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
		above = [4]float32{frac(col[0]), frac(col[1]), frac(col[2]), a}
	}
	return alphaBlend(above, below)
}

// alphaBlend performs standard alpha compositing of above over below, with
// channels and alpha expressed as fractions.
func alphaBlend(above, below [4]float32) [4]uint8 {
	alpha := above[3] + below[3]*(1-above[3])
	var out [4]uint8
	out[3] = asByte(alpha)
	if alpha <= 0 {
		return out
	}
	for i := 0; i < 3; i++ {
		out[i] = asByte((above[i]*above[3] + below[i]*below[3]*(1-above[3])) / alpha)
	}
	return out
}

func frac(b uint8) float32 { return float32(b) / 255 }

func asByte(f float32) uint8 {
	v := f * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
