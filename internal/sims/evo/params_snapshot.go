package evo

import (
	"strconv"

	"evo-grid/internal/core"
)

// Parameters reports the current tunables for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Field",
			Params: []core.Parameter{
				floatParam("decay_factor", "Decay factor", params.DecayFactor),
				floatParam("diffusion_fraction", "Diffusion fraction", params.DiffusionFraction),
				floatParam("min_substance", "Minimum substance", params.MinSubstance),
			},
		},
		{
			Name: "Creatures",
			Params: []core.Parameter{
				floatParam("death_chance", "Death chance", params.DeathChance),
				floatParam("birth_chance", "Birth chance", params.BirthChance),
				floatParam("move_chance", "Move chance", params.MoveChance),
				floatParam("deposit_chance", "Deposit chance", params.DepositChance),
				floatParam("deposit_amount", "Deposit amount", params.DepositAmount),
				floatParam("consume_amount", "Consume amount", params.ConsumeAmount),
				intParam("color_drift", "Color drift", params.ColorDrift),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("creature_chance", "Creature chance", params.CreatureChance),
				intParam("substance_patch_count", "Substance patch count", params.SubstancePatchCount),
				intParam("substance_patch_radius_min", "Substance patch radius min", params.SubstancePatchRadiusMin),
				intParam("substance_patch_radius_max", "Substance patch radius max", params.SubstancePatchRadiusMax),
				floatParam("substance_patch_density", "Substance patch density", params.SubstancePatchDensity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the overlay.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		chanceControl("decay_factor", "Decay factor"),
		{Key: "diffusion_fraction", Label: "Diffusion fraction", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.25, HasMin: true, HasMax: true},
		chanceControl("death_chance", "Death chance"),
		chanceControl("birth_chance", "Birth chance"),
		chanceControl("move_chance", "Move chance"),
		chanceControl("deposit_chance", "Deposit chance"),
		chanceControl("deposit_amount", "Deposit amount"),
		chanceControl("consume_amount", "Consume amount"),
		{Key: "color_drift", Label: "Color drift", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable, clamping to its control
// bounds. It reports whether the key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	target := w.floatParamField(key)
	if target == nil {
		return false
	}
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		if ctrl.HasMin && value < ctrl.Min {
			value = ctrl.Min
		}
		if ctrl.HasMax && value > ctrl.Max {
			value = ctrl.Max
		}
	}
	*target = value
	return true
}

// SetIntParameter updates an integer tunable. It reports whether the key
// was recognized.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "color_drift":
		if value < 0 {
			value = 0
		}
		if value > 255 {
			value = 255
		}
		w.cfg.Params.ColorDrift = value
		return true
	}
	return false
}

func (w *World) floatParamField(key string) *float64 {
	p := &w.cfg.Params
	switch key {
	case "decay_factor":
		return &p.DecayFactor
	case "diffusion_fraction":
		return &p.DiffusionFraction
	case "death_chance":
		return &p.DeathChance
	case "birth_chance":
		return &p.BirthChance
	case "move_chance":
		return &p.MoveChance
	case "deposit_chance":
		return &p.DepositChance
	case "deposit_amount":
		return &p.DepositAmount
	case "consume_amount":
		return &p.ConsumeAmount
	}
	return nil
}

func chanceControl(key, label string) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   0.01,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
