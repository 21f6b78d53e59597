// Package engine implements the molecular-dynamics integrator.
//
// A [Universe] owns a fixed set of point masses and advances them
// through time with [Universe.Step], which composes four stages in a
// fixed order:
//
//   - explicit predictor update of positions and velocities
//   - Lennard-Jones force evaluation over 27 periodic images
//   - periodic boundary wrap
//   - isokinetic velocity-rescaling thermostat
//
// A step either advances the state by exactly one timestep or reports
// divergence and leaves the state untouched. There is no corrector
// stage and no pressure coupling.
//
// # Thread Safety
//
// Universe instances are NOT thread-safe. The design assumes a single
// exclusive writer driving the step loop; snapshots for recording are
// taken synchronously between steps.
package engine
