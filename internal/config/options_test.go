package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/seed"
)

func TestDefaults(t *testing.T) {
	opts := Default()

	assert.Equal(t, "-", opts.Output)
	assert.Equal(t, seed.DefaultMinSeparation, opts.MinSeparation)
	assert.Equal(t, seed.DefaultMass, opts.Mass)
	assert.Equal(t, engine.CutoffDefault, opts.Cutoff)
	assert.Equal(t, "shift", opts.Wrap)
	assert.Equal(t, "isokinetic", opts.Thermostat)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.Live)
	assert.Equal(t, uint64(100), opts.ProgressEvery)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	src := "output: run.gro\nseed: 42\nwrap: modulo\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "run.gro", opts.Output)
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, "modulo", opts.Wrap)
	assert.Equal(t, "debug", opts.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "isokinetic", opts.Thermostat)
	assert.Equal(t, engine.CutoffDefault, opts.Cutoff)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	opts := Default()
	opts.Seed = 7
	opts.Live = true
	require.NoError(t, Save(path, opts))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, opts, loaded)
}

func TestWrapModeMapping(t *testing.T) {
	tests := []struct {
		in      string
		want    engine.WrapMode
		wantErr bool
	}{
		{"shift", engine.WrapShift, false},
		{"", engine.WrapShift, false},
		{"modulo", engine.WrapModulo, false},
		{"torus", 0, true},
	}
	for _, tt := range tests {
		opts := &Options{Wrap: tt.in}
		got, err := opts.WrapMode()
		if tt.wantErr {
			assert.Error(t, err, "wrap %q", tt.in)
			continue
		}
		require.NoError(t, err, "wrap %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestThermostatModeMapping(t *testing.T) {
	tests := []struct {
		in      string
		want    engine.ThermostatMode
		wantErr bool
	}{
		{"isokinetic", engine.ThermostatIsokinetic, false},
		{"", engine.ThermostatIsokinetic, false},
		{"off", engine.ThermostatOff, false},
		{"nose-hoover", 0, true},
	}
	for _, tt := range tests {
		opts := &Options{Thermostat: tt.in}
		got, err := opts.ThermostatMode()
		if tt.wantErr {
			assert.Error(t, err, "thermostat %q", tt.in)
			continue
		}
		require.NoError(t, err, "thermostat %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
