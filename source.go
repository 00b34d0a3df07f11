package bounce

import "math/rand/v2"

// Source supplies the random draws for clone placement, clone velocity and
// background colors. IntN returns a value in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomColor samples each channel uniformly in [0, 100], the darker half of
// the 8-bit range.
func randomColor(src Source) RGB {
	return RGB{
		R: uint8(src.IntN(101)),
		G: uint8(src.IntN(101)),
		B: uint8(src.IntN(101)),
	}
}
