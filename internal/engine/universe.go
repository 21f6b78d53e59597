package engine

import (
	"fmt"

	"github.com/san-kum/bibber/internal/unit"
	"github.com/san-kum/bibber/internal/vec"
)

// Boltzmann is the Boltzmann constant in J/K.
const Boltzmann = 1.380649e-23

// WrapMode selects the periodic boundary wrapping policy.
type WrapMode int

const (
	// WrapShift compares each coordinate against the half-extent of
	// the origin-centered box and wraps by a single box-length
	// increment. This is the default.
	WrapShift WrapMode = iota
	// WrapModulo wraps out-of-cell coordinates with a floating-point
	// remainder instead of a single increment.
	WrapModulo
)

// ThermostatMode selects the temperature-control policy.
type ThermostatMode int

const (
	// ThermostatIsokinetic rescales every particle's speed to the
	// target value each step, preserving direction.
	ThermostatIsokinetic ThermostatMode = iota
	// ThermostatOff disables temperature control.
	ThermostatOff
)

// Config holds the fixed parameters of a simulation run. It is
// validated wholesale by New; a Universe is never observable in a
// partially configured state.
type Config struct {
	// Start is the simulation clock value at construction.
	Start unit.Time
	// Dt is the integration timestep. Constant for the run.
	Dt unit.Time
	// Boundary holds the periodic box extents in meters. The box is
	// centered on the origin, so coordinates live in [-b/2, b/2).
	Boundary vec.Vec3
	// Temperature is the thermostat target in Kelvin.
	Temperature float64
	// Cutoff is the interaction cutoff radius in meters. Zero selects
	// CutoffDefault.
	Cutoff float64
	// Wrap selects the boundary wrapping policy.
	Wrap WrapMode
	// Thermostat selects the temperature-control policy.
	Thermostat ThermostatMode
}

func (c Config) validate() error {
	if c.Dt.AsSeconds() <= 0 {
		return fmt.Errorf("engine: timestep must be positive, got %g s", c.Dt.AsSeconds())
	}
	if c.Boundary.X <= 0 || c.Boundary.Y <= 0 || c.Boundary.Z <= 0 {
		return fmt.Errorf("engine: boundary extents must be positive, got %+v", c.Boundary)
	}
	if c.Temperature < 0 {
		return fmt.Errorf("engine: temperature must be non-negative, got %g K", c.Temperature)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("engine: cutoff must be non-negative, got %g m", c.Cutoff)
	}
	return nil
}

// Universe is the integrator state machine. It exclusively owns its
// particle collection; callers observe it through accessors and the
// Snapshot copy.
type Universe struct {
	time        unit.Time
	iteration   uint64
	dt          unit.Time
	boundary    vec.Vec3
	temperature float64
	cutoff      float64
	wrap        WrapMode
	thermostat  ThermostatMode
	particles   []Particle

	// scratch buffer for the per-step position snapshot
	positions []vec.Vec3
}

// New constructs a Universe from a validated configuration. Particles
// are attached afterwards with AddParticles.
func New(cfg Config) (*Universe, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cutoff := cfg.Cutoff
	if cutoff == 0 {
		cutoff = CutoffDefault
	}
	return &Universe{
		time:        cfg.Start,
		dt:          cfg.Dt,
		boundary:    cfg.Boundary,
		temperature: cfg.Temperature,
		cutoff:      cutoff,
		wrap:        cfg.Wrap,
		thermostat:  cfg.Thermostat,
	}, nil
}

// AddParticles appends particles to the universe. The particle count is
// fixed once stepping starts; callers attach the full set up front.
func (u *Universe) AddParticles(ps []Particle) {
	u.particles = append(u.particles, ps...)
}

func (u *Universe) Time() unit.Time    { return u.time }
func (u *Universe) Iteration() uint64  { return u.iteration }
func (u *Universe) Dt() unit.Time      { return u.dt }
func (u *Universe) Boundary() vec.Vec3 { return u.boundary }
func (u *Universe) Target() float64    { return u.temperature }
func (u *Universe) NumParticles() int  { return len(u.particles) }

// Snapshot returns a deep copy of the particle collection. The copy
// shares no storage with the live universe.
func (u *Universe) Snapshot() []Particle {
	ps := make([]Particle, len(u.particles))
	copy(ps, u.particles)
	return ps
}
