// pkg/shared/constants.go

package shared

const (
	// WheelID is the binary name and the service name reported to telemetry.
	WheelID = "wheel"
	// EnvPrefix is prepended to every flag when it is read from the environment.
	EnvPrefix = "WHEEL"
)

// Version is overridden at build time with -ldflags "-X .../pkg/shared.Version=...".
var Version = "dev"

const (
	// Output formats accepted by --output.
	OutputText = "text"
	OutputYAML = "yaml"
)

const (
	FlagRotations     = "rotations"
	FlagSpinDelay     = "spin-delay"
	FlagSeed          = "seed"
	FlagOutput        = "output"
	FlagLogLevel      = "log-level"
	FlagTelemetryFile = "telemetry-file"
)

const (
	FilePermOwnerReadWrite = 0600
	DirPermOwnerRWX        = 0700
)
