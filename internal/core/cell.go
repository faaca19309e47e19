package core

// RGB is a packed display color, one byte per channel.
type RGB [3]uint8

// Creature is a discrete grid occupant. Its color is both its display
// identity and the trait passed (with drift) to offspring.
type Creature struct {
	Color RGB
}

// Substance is one sample of the diffusible field. Amount is a
// concentration in [0, 1] and doubles as display opacity.
type Substance struct {
	Color  RGB
	Amount float32
}

// Cell is one addressable grid position. The occupant and substance slots
// are independent: either, both, or neither may be set.
type Cell struct {
	Creature     Creature
	HasCreature  bool
	Substance    Substance
	HasSubstance bool
}
