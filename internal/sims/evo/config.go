package evo

import "strconv"

// Params holds the tunable rates and probabilities for the evo sim. Every
// rule constant lives here rather than in code; zeroing the chances yields
// an inert world, which the tests rely on.
type Params struct {
	// Field phase.
	DecayFactor       float64 // fraction of substance lost per tick
	DiffusionFraction float64 // fraction of the decayed remainder sent to each orthogonal neighbor
	MinSubstance      float64 // amounts at or below this clear the slot

	// Occupant phase.
	DeathChance   float64
	BirthChance   float64
	MoveChance    float64
	DepositChance float64
	DepositAmount float64
	ConsumeAmount float64
	ColorDrift    int // max per-channel color delta for offspring

	// Seeding.
	CreatureChance          float64 // per-cell creature probability at Reset
	SubstancePatchCount     int
	SubstancePatchRadiusMin int
	SubstancePatchRadiusMax int
	SubstancePatchDensity   float64
}

// Config controls the evo simulation dimensions and rules.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1337,
		Params: Params{
			DecayFactor:       0.02,
			DiffusionFraction: 0.1,
			MinSubstance:      0.004,

			DeathChance:   0.005,
			BirthChance:   0.02,
			MoveChance:    0.5,
			DepositChance: 0.25,
			DepositAmount: 0.3,
			ConsumeAmount: 0.05,
			ColorDrift:    12,

			CreatureChance:          0.02,
			SubstancePatchCount:     12,
			SubstancePatchRadiusMin: 3,
			SubstancePatchRadiusMax: 8,
			SubstancePatchDensity:   0.7,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["decay_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DecayFactor = parsed
		}
	}
	if v, ok := cfg["diffusion_fraction"]; ok {
		// Four orthogonal neighbors; more than a quarter each would drain
		// the cell below zero.
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 0.25 {
			c.Params.DiffusionFraction = parsed
		}
	}
	if v, ok := cfg["min_substance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MinSubstance = parsed
		}
	}
	if v, ok := cfg["death_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DeathChance = parsed
		}
	}
	if v, ok := cfg["birth_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BirthChance = parsed
		}
	}
	if v, ok := cfg["move_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MoveChance = parsed
		}
	}
	if v, ok := cfg["deposit_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DepositChance = parsed
		}
	}
	if v, ok := cfg["deposit_amount"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DepositAmount = parsed
		}
	}
	if v, ok := cfg["consume_amount"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ConsumeAmount = parsed
		}
	}
	if v, ok := cfg["color_drift"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ColorDrift = parsed
		}
	}
	if v, ok := cfg["creature_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CreatureChance = parsed
		}
	}
	if v, ok := cfg["substance_patch_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SubstancePatchCount = parsed
		}
	}
	if v, ok := cfg["substance_patch_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SubstancePatchRadiusMin = parsed
		}
	}
	if v, ok := cfg["substance_patch_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SubstancePatchRadiusMax = parsed
		}
	}
	if c.Params.SubstancePatchRadiusMax < c.Params.SubstancePatchRadiusMin {
		c.Params.SubstancePatchRadiusMax = c.Params.SubstancePatchRadiusMin
	}
	if v, ok := cfg["substance_patch_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SubstancePatchDensity = parsed
		}
	}
	return c
}
