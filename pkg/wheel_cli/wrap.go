// pkg/wheel_cli/wrap.go

package wheel_cli

import (
	"context"

	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is a command body that receives the runtime context.
type RunFunc func(rc *wheel_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap ensures panic recovery, telemetry and lifecycle logging around fn.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}

		rc := wheel_io.NewContext(parent, cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		rc.Log.Debug("Command started", zap.Strings("args", args))

		if err = fn(rc, cmd, args); err != nil {
			var classified *wheel_err.ClassifiedError
			if !cerr.As(err, &classified) {
				err = cerr.WithStack(err)
			}
			return err
		}
		return nil
	}
}
