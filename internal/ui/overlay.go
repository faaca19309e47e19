//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"evo-grid/internal/core"
)

type tickProvider interface {
	Tick() uint64
}

type statsProvider interface {
	Population() int
	SubstanceMass() float64
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws a small status readout and a keyboard-driven parameter
// tuner on top of the simulation view. H toggles it, [ and ] select a
// control, - and = nudge it by its step.
type Overlay struct {
	sim   core.Sim
	scale int

	visible  bool
	selected int

	controls    []core.ParameterControl
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, visible: true}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		o.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		o.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		o.floatSetter = setter
	}
	return o
}

// Update processes overlay input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
	if !o.visible || len(o.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		o.selected = (o.selected + len(o.controls) - 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		o.selected = (o.selected + 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		o.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		o.adjust(1)
	}
}

func (o *Overlay) adjust(direction int) {
	ctrl := o.controls[o.selected]
	cur, ok := o.parameterValue(ctrl.Key)
	if !ok {
		return
	}
	target := cur + float64(direction)*ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if o.intSetter != nil {
			o.intSetter.SetIntParameter(ctrl.Key, int(target))
		}
	case core.ParamTypeFloat:
		if o.floatSetter != nil {
			o.floatSetter.SetFloatParameter(ctrl.Key, target)
		}
	}
}

func (o *Overlay) parameterValue(key string) (float64, bool) {
	provider, ok := o.sim.(parameterProvider)
	if !ok {
		return 0, false
	}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			if param.Key != key {
				continue
			}
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				return 0, false
			}
			return parsed, true
		}
	}
	return 0, false
}

// Draw renders the overlay text.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}
	status := ""
	if tp, ok := o.sim.(tickProvider); ok {
		status = fmt.Sprintf("tick %d", tp.Tick())
	}
	if sp, ok := o.sim.(statsProvider); ok {
		status += fmt.Sprintf("  creatures %d  substance %.1f", sp.Population(), sp.SubstanceMass())
	}
	if paused {
		status += "  [paused]"
	}
	textColor := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, textColor)

	if len(o.controls) == 0 {
		return
	}
	ctrl := o.controls[o.selected]
	value := "--"
	if cur, ok := o.parameterValue(ctrl.Key); ok {
		if ctrl.Type == core.ParamTypeInt {
			value = strconv.Itoa(int(cur))
		} else {
			value = strconv.FormatFloat(cur, 'f', 3, 64)
		}
	}
	line := fmt.Sprintf("%s = %s  ([/] select, -/= adjust, H hide)", ctrl.Label, value)
	text.Draw(screen, line, basicfont.Face7x13, 4, 28, textColor)
}
