// Package config holds run options orthogonal to the recipe: output
// paths, seeding, policy variants and presentation. Options load from a
// YAML file and are overridable by CLI flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/seed"
)

type Options struct {
	// Output is the trajectory output path; "-" writes to stdout.
	Output string `yaml:"output"`
	// SVG, when set, additionally writes an XY path plot.
	SVG string `yaml:"svg"`

	// Seed for particle placement. Zero asks the CLI to derive one
	// from the wall clock.
	Seed int64 `yaml:"seed"`
	// MinSeparation is the placement pruning distance in meters.
	MinSeparation float64 `yaml:"min_separation"`
	// Mass assigned to seeded particles, in kilograms.
	Mass float64 `yaml:"mass"`

	// Cutoff is the interaction cutoff radius in meters.
	Cutoff float64 `yaml:"cutoff"`
	// Wrap selects the boundary policy: "shift" or "modulo".
	Wrap string `yaml:"wrap"`
	// Thermostat selects temperature control: "isokinetic" or "off".
	Thermostat string `yaml:"thermostat"`

	LogLevel string `yaml:"log_level"`
	// Live enables the interactive progress view.
	Live bool `yaml:"live"`
	// ProgressEvery sets the progress report cadence in steps.
	ProgressEvery uint64 `yaml:"progress_every"`
}

func Default() *Options {
	return &Options{
		Output:        "-",
		MinSeparation: seed.DefaultMinSeparation,
		Mass:          seed.DefaultMass,
		Cutoff:        engine.CutoffDefault,
		Wrap:          "shift",
		Thermostat:    "isokinetic",
		LogLevel:      "info",
		ProgressEvery: 100,
	}
}

// Load reads options from a YAML file over the defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func Save(path string, opts *Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WrapMode maps the textual policy name onto the engine constant.
func (o *Options) WrapMode() (engine.WrapMode, error) {
	switch o.Wrap {
	case "shift", "":
		return engine.WrapShift, nil
	case "modulo":
		return engine.WrapModulo, nil
	default:
		return 0, fmt.Errorf("config: unknown wrap policy %q", o.Wrap)
	}
}

// ThermostatMode maps the textual policy name onto the engine constant.
func (o *Options) ThermostatMode() (engine.ThermostatMode, error) {
	switch o.Thermostat {
	case "isokinetic", "":
		return engine.ThermostatIsokinetic, nil
	case "off":
		return engine.ThermostatOff, nil
	default:
		return 0, fmt.Errorf("config: unknown thermostat policy %q", o.Thermostat)
	}
}
