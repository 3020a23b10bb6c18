// pkg/wheel/session.go

package wheel

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ARTLEST/decision-wheel/pkg/interaction"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// SessionOptions tunes a Session. Zero values are valid: no animation,
// entropy-seeded picker, real sleeps.
type SessionOptions struct {
	Rotations int
	SpinDelay time.Duration
	// YAML replaces the text report and banners with a Summary document.
	YAML   bool
	Picker Picker
	Sleep  Sleeper
}

// Session runs the collect, spin, select and report pipeline exactly once.
// Prompts and the animation go to the prompter's writer; the report goes to out.
type Session struct {
	prompter *interaction.Prompter
	out      io.Writer
	picker   Picker
	sleep    Sleeper
	opts     SessionOptions
}

func NewSession(prompter *interaction.Prompter, out io.Writer, opts SessionOptions) *Session {
	s := &Session{
		prompter: prompter,
		out:      out,
		picker:   opts.Picker,
		sleep:    opts.Sleep,
		opts:     opts,
	}
	if s.picker == nil {
		s.picker = NewRandom(0)
	}
	if s.sleep == nil {
		s.sleep = Sleep
	}
	return s
}

// Collect reads the option count and then each option, re-prompting on
// invalid answers. It fails only when input ends or ctx is cancelled.
func (s *Session) Collect(ctx context.Context) (OptionSet, error) {
	w := s.prompter.Out()
	st := newStyles(w)

	_, _ = fmt.Fprintln(w, st.heading.Render("PHASE 1: CHOICE DATA COLLECTION"))
	_, _ = fmt.Fprintln(w, "--------------------------------")

	count, err := s.prompter.PromptIntInRange(ctx,
		fmt.Sprintf("Enter total number of decision options (minimum: %d, maximum: %d)", MinOptions, MaxOptions),
		MinOptions, MaxOptions)
	if err != nil {
		return OptionSet{}, err
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Enter decision options (press Enter after each option):")

	labels := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		label, err := s.prompter.PromptRequired(ctx, fmt.Sprintf("Option %d", i))
		if err != nil {
			return OptionSet{}, err
		}
		labels = append(labels, label)
	}

	set, err := NewOptionSet(labels)
	if err != nil {
		return OptionSet{}, wheel_err.NewInternalError("collected options failed validation", err)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "DATA COLLECTION COMPLETED SUCCESSFULLY")
	_, _ = fmt.Fprintf(w, "Total Options Processed: %d\n", set.Len())
	_, _ = fmt.Fprintln(w)

	otelzap.Ctx(ctx).Info("Options collected", zap.Int("count", set.Len()))
	return set, nil
}

// Select performs the single draw that decides the outcome.
func (s *Session) Select(set OptionSet) SelectionResult {
	return SelectRandom(s.picker, set)
}

// Run executes the whole session.
func (s *Session) Run(ctx context.Context) (SelectionResult, error) {
	logger := otelzap.Ctx(ctx)

	RenderHeader(s.prompter.Out())

	set, err := s.Collect(ctx)
	if err != nil {
		return SelectionResult{}, err
	}

	if _, err := s.Spin(ctx, set); err != nil {
		return SelectionResult{}, wheel_err.NewUserCancelledError("wheel spin", err)
	}

	result := s.Select(set)
	logger.Info("Option selected",
		zap.Int("position", result.Position()),
		zap.Int("total", result.Total),
		zap.String("label", result.Label))

	if s.opts.YAML {
		return result, RenderSummaryYAML(s.out, set, result)
	}

	RenderReport(s.out, set, result)
	RenderConclusion(s.out)
	return result, nil
}
