/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ARTLEST/decision-wheel/pkg/cli"
	"github.com/ARTLEST/decision-wheel/pkg/config"
	"github.com/ARTLEST/decision-wheel/pkg/interaction"
	"github.com/ARTLEST/decision-wheel/pkg/logger"
	"github.com/ARTLEST/decision-wheel/pkg/shared"
	"github.com/ARTLEST/decision-wheel/pkg/telemetry"
	"github.com/ARTLEST/decision-wheel/pkg/wheel"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_cli"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// rootState is shared between the hooks of one root command instance.
type rootState struct {
	v        *viper.Viper
	cfg      *config.Config
	shutdown telemetry.ShutdownFunc
}

func newRootCmd() (*cobra.Command, *rootState) {
	st := &rootState{v: viper.New()}

	root := &cobra.Command{
		Use:   shared.WheelID,
		Short: "Pick one option at random from a short list",
		Long: `wheel asks how many options you are choosing between (2 to 10),
reads each option, spins a virtual wheel and announces the winner
together with a few statistics about the draw.

Input is read line by line from stdin, so answers can be piped:

  printf '3\nPizza\nSushi\nTacos\n' | wheel --spin-delay=0`,
		Version:       shared.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return wheel_err.NewValidationError(err.Error(), err,
					"Options are read from stdin, not from arguments")
			}
			return nil
		},
		PersistentPreRunE: st.preRun,
		RunE: wheel_cli.Wrap(func(rc *wheel_io.RuntimeContext, cmd *cobra.Command, _ []string) error {
			return runSpin(rc, cmd, st.cfg)
		}),
	}

	cli.AddIntFlag(root, shared.FlagRotations, "r", config.DefaultRotations, "Number of intermediate picks shown while the wheel spins (0-10)")
	cli.AddDurationFlag(root, shared.FlagSpinDelay, "d", config.DefaultSpinDelay, "Pause after each intermediate pick (0-1s)")
	cli.AddUint64Flag(root, shared.FlagSeed, "", 0, "Seed for a reproducible draw; 0 seeds from runtime entropy")
	cli.AddStringFlag(root, shared.FlagOutput, "o", shared.OutputText, "Report format: text or yaml", false)
	cli.AddStringFlag(root, shared.FlagLogLevel, "", logger.DefaultLevel, "Log level: debug, info, warn or error", false)
	cli.AddStringFlag(root, shared.FlagTelemetryFile, "", "", "Append trace spans as JSON lines to this file", false)

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return wheel_err.NewValidationError(err.Error(), wheel_err.WrapValidationError(err),
			"Run 'wheel --help' for usage")
	})

	cli.SetViperEnvPrefix(st.v, shared.EnvPrefix)
	config.SetDefaults(st.v)
	if err := cli.BindFlagsToViper(root, st.v); err != nil {
		logger.L().Warn("Failed to bind flags", zap.Error(err))
	}

	return root, st
}

// preRun resolves configuration and reconfigures logging and telemetry
// before the command context is created.
func (st *rootState) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(st.v)
	if err != nil {
		return err
	}
	st.cfg = cfg

	logger.InitializeWithWriter(cfg.LogLevel, cmd.ErrOrStderr())

	shutdown, err := telemetry.Init(shared.WheelID, cfg.TelemetryFile)
	if err != nil {
		return wheel_err.NewValidationError("cannot enable telemetry", err,
			fmt.Sprintf("Check that %q is writable or drop --%s", cfg.TelemetryFile, shared.FlagTelemetryFile))
	}
	st.shutdown = shutdown

	logger.L().Debug("Configuration loaded",
		zap.Int("rotations", cfg.Rotations),
		zap.Duration("spin_delay", cfg.SpinDelay),
		zap.Bool("seeded", cfg.Seed != 0),
		zap.String("output", cfg.Output),
		zap.Bool("stdin_tty", interaction.IsTTY()))
	return nil
}

func runSpin(rc *wheel_io.RuntimeContext, cmd *cobra.Command, cfg *config.Config) error {
	if cfg == nil {
		return wheel_err.NewInternalError("configuration was not loaded", nil)
	}

	// stdout carries nothing but the document in yaml mode
	promptOut := cmd.OutOrStdout()
	if cfg.YAMLOutput() {
		promptOut = cmd.ErrOrStderr()
	}
	prompter := interaction.NewPrompter(cmd.InOrStdin(), promptOut)

	session := wheel.NewSession(prompter, cmd.OutOrStdout(), wheel.SessionOptions{
		Rotations: cfg.Rotations,
		SpinDelay: cfg.SpinDelay,
		YAML:      cfg.YAMLOutput(),
		Picker:    wheel.NewRandom(cfg.Seed),
	})

	rc.Attributes["output"] = cfg.Output
	rc.Attributes["interactive"] = fmt.Sprint(interaction.IsTerminal(cmd.InOrStdin()))

	result, err := session.Run(rc.Ctx)
	if err != nil {
		return err
	}

	rc.Span.SetAttributes(
		attribute.Int("wheel.options", result.Total),
		attribute.Int("wheel.position", result.Position()),
	)
	return nil
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	root, st := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)

	if st.shutdown != nil {
		if serr := st.shutdown(context.Background()); serr != nil {
			logger.L().Warn("Failed to flush telemetry", zap.Error(serr))
		}
	}

	code := wheel_err.GetExitCode(err)
	if err != nil {
		logger.L().Debug("CLI execution error", zap.Error(err), zap.Int("exit_code", code))
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	_ = logger.Sync()
	return code
}

// Execute runs the root command against the process streams and exits.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
