// pkg/wheel/report.go

package wheel

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	cerr "github.com/cockroachdb/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	bannerRule = "========================================"
	// minLabelWidth keeps short option lists from producing a cramped box.
	minLabelWidth = 15
)

type styles struct {
	banner  lipgloss.Style
	heading lipgloss.Style
	winner  lipgloss.Style
}

// newStyles binds styles to w; a writer that is not a terminal gets plain text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		banner:  r.NewStyle().Bold(true),
		heading: r.NewStyle().Bold(true).Underline(true),
		winner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff00")),
	}
}

func centered(title string) string {
	pad := (utf8.RuneCountInString(bannerRule) - utf8.RuneCountInString(title)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + title
}

func banner(w io.Writer, st styles, title string) {
	_, _ = fmt.Fprintln(w, bannerRule)
	_, _ = fmt.Fprintln(w, st.banner.Render(centered(title)))
	_, _ = fmt.Fprintln(w, bannerRule)
}

// RenderHeader prints the program banner.
func RenderHeader(w io.Writer) {
	st := newStyles(w)
	banner(w, st, "DECISION WHEEL")
	_, _ = fmt.Fprintln(w, "Selection Method: Uniform pseudo-random draw")
	_, _ = fmt.Fprintln(w, "Processing Mode: Interactive decision support")
	_, _ = fmt.Fprintln(w, bannerRule)
	_, _ = fmt.Fprintln(w)
}

// RenderReport prints the selection banner, the wheel listing and the statistics.
func RenderReport(w io.Writer, set OptionSet, result SelectionResult) {
	st := newStyles(w)
	renderSelection(w, st, set, result)
	renderWheel(w, st, set, result)
	renderStatistics(w, st, set, result)
}

func renderSelection(w io.Writer, st styles, set OptionSet, result SelectionResult) {
	banner(w, st, "SELECTION RESULTS")
	_, _ = fmt.Fprintf(w, "SELECTED OPTION: %s\n", result.Label)
	_, _ = fmt.Fprintf(w, "Selection Index: %d of %d\n", result.Position(), set.Len())
	_, _ = fmt.Fprintln(w, bannerRule)
	_, _ = fmt.Fprintln(w)
}

func renderWheel(w io.Writer, st styles, set OptionSet, result SelectionResult) {
	n := set.Len()
	_, _ = fmt.Fprintln(w, st.heading.Render("PHASE 3: VISUAL WHEEL REPRESENTATION"))
	_, _ = fmt.Fprintln(w, "------------------------------------")
	_, _ = fmt.Fprintln(w, "Wheel Configuration Analysis:")
	_, _ = fmt.Fprintf(w, "Total Sectors: %d\n", n)
	_, _ = fmt.Fprintf(w, "Sector Angle: %.2f degrees\n", SectorAngle(n))
	_, _ = fmt.Fprintf(w, "Selection Probability: %.2f%% per option\n", Probability(n))
	_, _ = fmt.Fprintln(w)

	width := minLabelWidth
	for _, label := range set.labels {
		if lw := lipgloss.Width(label); lw > width {
			width = lw
		}
	}
	border := "+" + strings.Repeat("-", width+6) + "+"

	_, _ = fmt.Fprintln(w, "ASCII Wheel Representation:")
	_, _ = fmt.Fprintln(w, border)
	for i, label := range set.labels {
		padded := label + strings.Repeat(" ", width-lipgloss.Width(label))
		line := fmt.Sprintf("| %2d. %s |", i+1, padded)
		if i == result.Index {
			line += st.winner.Render(" <-- SELECTED")
		}
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintln(w, border)
	_, _ = fmt.Fprintln(w)
}

func renderStatistics(w io.Writer, st styles, set OptionSet, result SelectionResult) {
	n := set.Len()
	complexity := ComplexityFor(n)

	_, _ = fmt.Fprintln(w, st.heading.Render("PHASE 4: STATISTICAL ANALYSIS REPORT"))
	_, _ = fmt.Fprintln(w, "------------------------------------")
	_, _ = fmt.Fprintln(w, "Probability Distribution Analysis:")
	_, _ = fmt.Fprintf(w, "- Individual Option Probability: %.2f%%\n", Probability(n))
	_, _ = fmt.Fprintf(w, "- Cumulative Selection Probability: %.2f%%\n", 100.0)
	_, _ = fmt.Fprintln(w, "- Statistical Distribution Type: Uniform")
	_, _ = fmt.Fprintln(w, "- Randomization Algorithm: PCG (math/rand/v2), not cryptographically secure")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Selection Validation Metrics:")
	_, _ = fmt.Fprintf(w, "- Selected Option Length: %d characters\n", utf8.RuneCountInString(result.Label))
	_, _ = fmt.Fprintf(w, "- Option Set Size: %d choices\n", n)
	_, _ = fmt.Fprintf(w, "- Decision Complexity: %s - %s\n", complexity, complexity.Commentary())
	_, _ = fmt.Fprintln(w)
}

// RenderConclusion prints the closing banner.
func RenderConclusion(w io.Writer) {
	st := newStyles(w)
	banner(w, st, "PROGRAM EXECUTION COMPLETE")
	_, _ = fmt.Fprintln(w, "Status: SUCCESSFUL TERMINATION")
	_, _ = fmt.Fprintln(w, "Thank you for using the Decision Wheel")
	_, _ = fmt.Fprintln(w, bannerRule)
}

// Summary is the machine-readable form of a report.
type Summary struct {
	Selected    string          `yaml:"selected"`
	Index       int             `yaml:"index"`
	Total       int             `yaml:"total"`
	Probability float64         `yaml:"probability_percent"`
	SectorAngle float64         `yaml:"sector_angle_degrees"`
	Complexity  Complexity      `yaml:"complexity"`
	Options     []SummaryOption `yaml:"options"`
}

type SummaryOption struct {
	Position int    `yaml:"position"`
	Label    string `yaml:"label"`
	Selected bool   `yaml:"selected,omitempty"`
}

// NewSummary derives a Summary from set and result.
func NewSummary(set OptionSet, result SelectionResult) Summary {
	n := set.Len()
	options := make([]SummaryOption, 0, n)
	for i, label := range set.labels {
		options = append(options, SummaryOption{
			Position: i + 1,
			Label:    label,
			Selected: i == result.Index,
		})
	}
	return Summary{
		Selected:    result.Label,
		Index:       result.Position(),
		Total:       n,
		Probability: RoundedProbability(n),
		SectorAngle: round2(SectorAngle(n)),
		Complexity:  ComplexityFor(n),
		Options:     options,
	}
}

// RenderSummaryYAML writes the Summary as a single YAML document.
func RenderSummaryYAML(w io.Writer, set OptionSet, result SelectionResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSummary(set, result)); err != nil {
		return cerr.Wrap(err, "encode selection summary")
	}
	return cerr.Wrap(enc.Close(), "flush selection summary")
}
