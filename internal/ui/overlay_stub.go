//go:build !ebiten

package ui

import "evo-grid/internal/core"

// Overlay is a placeholder for the headless build.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any, bool) {}
