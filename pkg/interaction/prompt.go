// pkg/interaction/prompt.go

package interaction

import (
	"context"
	"fmt"
	"strconv"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// PromptValidated asks for input until the validator passes.
// Each rejection prints "ERROR: <reason>" and re-prompts with the same label.
// Only read failures, such as end of input, are returned.
func (p *Prompter) PromptValidated(ctx context.Context, label string, validator func(string) error) (string, error) {
	for attempt := 1; ; attempt++ {
		input, err := p.ReadLine(ctx, label)
		if err != nil {
			return "", err
		}
		if verr := validator(input); verr != nil {
			otelzap.Ctx(ctx).Warn("Input rejected",
				zap.String("label", label),
				zap.Int("attempt", attempt),
				zap.Error(verr))
			_, _ = fmt.Fprintf(p.out, "ERROR: %v\n", verr)
			continue
		}
		return input, nil
	}
}

// PromptRequired keeps asking until a non-blank line is entered.
func (p *Prompter) PromptRequired(ctx context.Context, label string) (string, error) {
	return p.PromptValidated(ctx, label, ValidateNonEmpty)
}

// PromptIntInRange keeps asking until an integer within [min, max] is entered.
func (p *Prompter) PromptIntInRange(ctx context.Context, label string, min, max int) (int, error) {
	input, err := p.PromptValidated(ctx, label, ValidateIntInRange(min, max))
	if err != nil {
		return 0, err
	}
	// already validated
	n, _ := strconv.Atoi(input)
	return n, nil
}
