package config

import (
	"testing"
	"time"

	"github.com/ARTLEST/decision-wheel/pkg/shared"
	"github.com/ARTLEST/decision-wheel/pkg/wheel_err"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 750*time.Millisecond, cfg.TotalSpin())
	assert.False(t, cfg.YAMLOutput())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{
			name:   "zero_rotations_allowed",
			mutate: func(c *Config) { c.Rotations = 0 },
		},
		{
			name:   "one_second_total_allowed",
			mutate: func(c *Config) { c.Rotations = 4; c.SpinDelay = 250 * time.Millisecond },
		},
		{
			name:    "too_many_rotations",
			mutate:  func(c *Config) { c.Rotations = 11; c.SpinDelay = 0 },
			wantErr: []string{"rotations"},
		},
		{
			name:    "negative_rotations",
			mutate:  func(c *Config) { c.Rotations = -1 },
			wantErr: []string{"rotations"},
		},
		{
			name:    "delay_above_one_second",
			mutate:  func(c *Config) { c.Rotations = 1; c.SpinDelay = 2 * time.Second },
			wantErr: []string{"spin-delay"},
		},
		{
			name:    "combined_delay_too_long",
			mutate:  func(c *Config) { c.Rotations = 10; c.SpinDelay = 200 * time.Millisecond },
			wantErr: []string{"must not exceed 1s"},
		},
		{
			name:    "unknown_output",
			mutate:  func(c *Config) { c.Output = "json" },
			wantErr: []string{"output"},
		},
		{
			name:    "unknown_log_level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: []string{"log-level"},
		},
		{
			name: "violations_are_aggregated",
			mutate: func(c *Config) {
				c.Output = "xml"
				c.LogLevel = "loud"
			},
			wantErr: []string{"output", "log-level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoad_FromViper(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(shared.FlagRotations, 3)
	v.Set(shared.FlagSpinDelay, "100ms")
	v.Set(shared.FlagSeed, "42")
	v.Set(shared.FlagOutput, " YAML ")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rotations)
	assert.Equal(t, 100*time.Millisecond, cfg.SpinDelay)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.YAMLOutput())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidIsValidationError(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(shared.FlagOutput, "html")

	cfg, err := Load(v)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Equal(t, wheel_err.CategoryValidation, wheel_err.CategoryOf(err))
	assert.Equal(t, 2, wheel_err.GetExitCode(err))
}
