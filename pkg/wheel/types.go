// pkg/wheel/types.go

package wheel

import (
	"fmt"
	"math"
	"strings"

	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
)

const (
	MinOptions = 2
	MaxOptions = 10
)

// OptionSet is the ordered, validated list of labels for one session.
// Insertion order is presentation order. The zero value is empty and invalid.
type OptionSet struct {
	labels []string
}

// NewOptionSet copies labels into an OptionSet, enforcing the size bounds
// and rejecting blank labels.
func NewOptionSet(labels []string) (OptionSet, error) {
	if len(labels) < MinOptions || len(labels) > MaxOptions {
		return OptionSet{}, wheel_err.NewValidationError(
			fmt.Sprintf("option set must contain %d-%d options, got %d", MinOptions, MaxOptions, len(labels)), nil)
	}
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return OptionSet{}, wheel_err.NewValidationError(
				fmt.Sprintf("option %d is blank", i+1), nil)
		}
	}
	return OptionSet{labels: append([]string(nil), labels...)}, nil
}

// Len is the number of options.
func (s OptionSet) Len() int { return len(s.labels) }

// At returns the label at 0-based index i.
func (s OptionSet) At(i int) string { return s.labels[i] }

// Labels returns a copy of the labels in input order.
func (s OptionSet) Labels() []string { return append([]string(nil), s.labels...) }

// SelectionResult is the outcome of one draw.
type SelectionResult struct {
	Index int // 0-based
	Label string
	Total int
}

// Position is the 1-based index shown to the user.
func (r SelectionResult) Position() int { return r.Index + 1 }

// Complexity is a qualitative label derived from the option count.
type Complexity string

const (
	ComplexityLow      Complexity = "LOW"
	ComplexityModerate Complexity = "MODERATE"
	ComplexityHigh     Complexity = "HIGH"
)

// ComplexityFor maps n ≤ 3 to LOW, 4-6 to MODERATE and ≥ 7 to HIGH.
func ComplexityFor(n int) Complexity {
	switch {
	case n <= 3:
		return ComplexityLow
	case n <= 6:
		return ComplexityModerate
	default:
		return ComplexityHigh
	}
}

// Commentary is the recommendation printed next to the label.
func (c Complexity) Commentary() string {
	switch c {
	case ComplexityLow:
		return "Limited option set provides clear alternatives"
	case ComplexityModerate:
		return "Balanced option set for effective decision-making"
	default:
		return "Extensive option set may benefit from preliminary filtering"
	}
}

// Probability is the per-option selection chance in percent.
func Probability(n int) float64 {
	return 100.0 / float64(n)
}

// RoundedProbability is Probability rounded to two decimals.
func RoundedProbability(n int) float64 {
	return round2(Probability(n))
}

// SectorAngle is the share of a full turn, in degrees, each option occupies.
func SectorAngle(n int) float64 {
	return 360.0 / float64(n)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
