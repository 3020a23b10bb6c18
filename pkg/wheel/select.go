// pkg/wheel/select.go

package wheel

import (
	"math/rand/v2"
)

// Picker draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// seedStream separates the two PCG words when a seed is given.
const seedStream = 0x9e3779b97f4a7c15

// NewRandom returns a PCG generator. A zero seed draws both PCG words from
// the runtime's randomly seeded source, so runs are not reproducible; any
// other seed yields a fixed sequence. Neither is cryptographically secure.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}

// SelectRandom performs the single uniform draw over set.
func SelectRandom(p Picker, set OptionSet) SelectionResult {
	idx := p.IntN(set.Len())
	return SelectionResult{
		Index: idx,
		Label: set.At(idx),
		Total: set.Len(),
	}
}
