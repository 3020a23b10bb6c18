// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Prompter reads line-oriented answers and writes prompts to out.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	echo   bool
}

// NewPrompter wraps in and out. Answers are echoed back to out when in is
// not a terminal, so piped sessions still read like a transcript.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		echo:   !IsTerminal(in),
	}
}

// SetEcho overrides the echo behaviour chosen by NewPrompter.
func (p *Prompter) SetEcho(echo bool) {
	p.echo = echo
}

// Out is the writer prompts are printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// ReadLine prompts the user with a label and returns a trimmed line of input.
// A final line without a trailing newline is still returned; a bare end of
// input yields a CategoryInput error naming the label.
func (p *Prompter) ReadLine(ctx context.Context, label string) (string, error) {
	logger := otelzap.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		return "", wheel_err.NewUserCancelledError(label, err)
	}

	logger.Debug("Prompting user for input", zap.String("label", label))
	_, _ = fmt.Fprint(p.out, label+": ")

	text, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Error("Failed to read user input", zap.Error(err))
			return "", cerr.Wrapf(err, "read %q", label)
		}
		if text == "" {
			_, _ = fmt.Fprintln(p.out)
			logger.Warn("Input closed while prompting", zap.String("label", label))
			return "", wheel_err.NewInputClosedError(label)
		}
	}

	value := strings.TrimSpace(text)
	if p.echo {
		_, _ = fmt.Fprintln(p.out, value)
	}
	logger.Debug("User input received", zap.String("label", label), zap.String("value", value))
	return value, nil
}

// IsTerminal reports whether r is a file attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTTY reports whether standard input is interactive.
func IsTTY() bool {
	return IsTerminal(os.Stdin)
}
