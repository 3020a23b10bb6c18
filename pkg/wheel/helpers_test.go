package wheel

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ARTLEST/decision-wheel/pkg/interaction"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap/zaptest"
)

// sequencePicker replays seq, wrapping around.
type sequencePicker struct {
	seq   []int
	calls int
}

func (p *sequencePicker) IntN(n int) int {
	v := p.seq[p.calls%len(p.seq)] % n
	p.calls++
	return v
}

type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (r *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return r.err
}

type sessionHarness struct {
	session *Session
	prompts *bytes.Buffer
	report  *bytes.Buffer
	sleeper *recordingSleeper
}

func newHarness(t *testing.T, input string, opts SessionOptions) *sessionHarness {
	t.Helper()
	otelzap.ReplaceGlobals(otelzap.New(zaptest.NewLogger(t)))

	h := &sessionHarness{
		prompts: &bytes.Buffer{},
		report:  &bytes.Buffer{},
		sleeper: &recordingSleeper{},
	}
	if opts.Sleep == nil {
		opts.Sleep = h.sleeper.Sleep
	}
	prompter := interaction.NewPrompter(strings.NewReader(input), h.prompts)
	h.session = NewSession(prompter, h.report, opts)
	return h
}

func mustOptionSet(t *testing.T, labels ...string) OptionSet {
	t.Helper()
	set, err := NewOptionSet(labels)
	if err != nil {
		t.Fatalf("NewOptionSet(%v): %v", labels, err)
	}
	return set
}
