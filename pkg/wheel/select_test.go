package wheel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("option-%d", i+1)
	}
	return labels
}

func TestSelectRandom_MembershipAndPosition(t *testing.T) {
	for n := MinOptions; n <= MaxOptions; n++ {
		set := mustOptionSet(t, labelsOf(n)...)
		for seed := uint64(1); seed <= 200; seed++ {
			result := SelectRandom(NewRandom(seed), set)

			require.GreaterOrEqual(t, result.Index, 0)
			require.Less(t, result.Index, n)
			assert.Equal(t, set.At(result.Index), result.Label)
			assert.Contains(t, set.Labels(), result.Label)
			assert.Equal(t, result.Index+1, result.Position())
			assert.Equal(t, n, result.Total)
		}
	}
}

func TestNewRandom_SeedIsReproducible(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
}

func TestNewRandom_ZeroSeedUsesEntropy(t *testing.T) {
	a, b := NewRandom(0), NewRandom(0)
	same := true
	for i := 0; i < 32; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	assert.False(t, same, "two entropy-seeded generators produced identical streams")
}

// chiSquareCritical holds the p=0.0001 critical values by degrees of freedom.
var chiSquareCritical = map[int]float64{
	1: 15.137,
	4: 23.513,
	9: 33.720,
}

func TestSelectRandom_IsUniform(t *testing.T) {
	const trials = 100_000

	for _, n := range []int{2, 5, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			set := mustOptionSet(t, labelsOf(n)...)
			rng := NewRandom(20261014 + uint64(n))

			counts := make([]int, n)
			for i := 0; i < trials; i++ {
				counts[SelectRandom(rng, set).Index]++
			}

			expected := float64(trials) / float64(n)
			var chi2 float64
			for _, c := range counts {
				d := float64(c) - expected
				chi2 += d * d / expected
			}

			assert.Less(t, chi2, chiSquareCritical[n-1], "counts=%v", counts)
			for i, c := range counts {
				assert.InDelta(t, 1.0/float64(n), float64(c)/trials, 0.01, "option %d", i)
			}
		})
	}
}
