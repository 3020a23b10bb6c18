// pkg/wheel/spin.go

package wheel

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Sleeper pauses for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Spin prints the rotation animation: independent intermediate picks with a
// short pause after each. The picks are returned for inspection only and
// never feed the final selection.
func (s *Session) Spin(ctx context.Context, set OptionSet) ([]int, error) {
	w := s.prompter.Out()
	st := newStyles(w)

	_, _ = fmt.Fprintln(w, st.heading.Render("PHASE 2: WHEEL SIMULATION EXECUTION"))
	_, _ = fmt.Fprintln(w, "-----------------------------------")
	_, _ = fmt.Fprintln(w, "Initializing randomization algorithms...")
	_, _ = fmt.Fprintln(w, "Executing wheel rotation simulation...")
	_, _ = fmt.Fprintln(w)

	picks := make([]int, 0, s.opts.Rotations)
	for phase := 1; phase <= s.opts.Rotations; phase++ {
		idx := s.picker.IntN(set.Len())
		picks = append(picks, idx)
		_, _ = fmt.Fprintf(w, "Rotation Phase %d: %s", phase, set.At(idx))

		if err := s.sleep(ctx, s.opts.SpinDelay); err != nil {
			_, _ = fmt.Fprintln(w)
			otelzap.Ctx(ctx).Warn("Spin interrupted", zap.Int("phase", phase), zap.Error(err))
			return picks, err
		}
		_, _ = fmt.Fprintln(w, " ->")
	}

	_, _ = fmt.Fprintln(w, "FINALIZING SELECTION...")
	_, _ = fmt.Fprintln(w)

	otelzap.Ctx(ctx).Debug("Spin finished",
		zap.Int("rotations", s.opts.Rotations),
		zap.Duration("spin_delay", s.opts.SpinDelay))
	return picks, nil
}
