// pkg/config/config.go

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ARTLEST/decision-wheel/pkg/logger"
	"github.com/ARTLEST/decision-wheel/pkg/shared"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

const (
	DefaultRotations = 5
	DefaultSpinDelay = 150 * time.Millisecond

	// MaxTotalSpin bounds rotations x spin delay.
	MaxTotalSpin = time.Second
)

// Config holds every tunable of a wheel run. Keys match the CLI flag names.
type Config struct {
	Rotations     int           `mapstructure:"rotations" validate:"gte=0,lte=10"`
	SpinDelay     time.Duration `mapstructure:"spin-delay" validate:"gte=0,lte=1s"`
	Seed          uint64        `mapstructure:"seed"`
	Output        string        `mapstructure:"output" validate:"oneof=text yaml"`
	LogLevel      string        `mapstructure:"log-level" validate:"required"`
	TelemetryFile string        `mapstructure:"telemetry-file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Default returns the configuration used when no flag or variable is set.
func Default() Config {
	return Config{
		Rotations: DefaultRotations,
		SpinDelay: DefaultSpinDelay,
		Output:    shared.OutputText,
		LogLevel:  logger.DefaultLevel,
	}
}

// SetDefaults registers Default() on v so unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(shared.FlagRotations, d.Rotations)
	v.SetDefault(shared.FlagSpinDelay, d.SpinDelay)
	v.SetDefault(shared.FlagSeed, d.Seed)
	v.SetDefault(shared.FlagOutput, d.Output)
	v.SetDefault(shared.FlagLogLevel, d.LogLevel)
	v.SetDefault(shared.FlagTelemetryFile, d.TelemetryFile)
}

// Load decodes v into a Config and validates it.
// Failures are classified as validation errors.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, wheel_err.WrapConfigError(cerr.Wrap(err, "decode configuration"))
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, wheel_err.WrapConfigError(err)
	}
	return &cfg, nil
}

// Validate reports every violated constraint at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result = multierror.Append(result,
					fmt.Errorf("%s: must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}

	if c.LogLevel != "" && !logger.ValidLevel(c.LogLevel) {
		result = multierror.Append(result, fmt.Errorf("log-level: unknown level %q", c.LogLevel))
	}

	if total := c.TotalSpin(); total > MaxTotalSpin {
		result = multierror.Append(result,
			fmt.Errorf("rotations x spin-delay is %s, must not exceed %s", total, MaxTotalSpin))
	}

	return result.ErrorOrNil()
}

// TotalSpin is the cumulative cosmetic delay of one spin.
func (c Config) TotalSpin() time.Duration {
	return time.Duration(c.Rotations) * c.SpinDelay
}

// YAMLOutput reports whether the summary document replaces the text report.
func (c Config) YAMLOutput() bool {
	return c.Output == shared.OutputYAML
}
