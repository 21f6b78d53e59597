package engine

import (
	"errors"
	"fmt"

	"github.com/san-kum/bibber/internal/unit"
)

// Domain errors for integration steps.
var (
	// ErrDiverged indicates the step produced a non-finite state.
	ErrDiverged = errors.New("engine: simulation diverged (non-finite state)")

	// ErrStationaryParticle indicates the isokinetic thermostat met a
	// particle with zero velocity, whose rescale is undefined.
	ErrStationaryParticle = errors.New("engine: cannot rescale a particle at rest")

	// ErrNoParticles indicates a step was attempted on an empty universe.
	ErrNoParticles = errors.New("engine: universe has no particles")
)

// StepError reports a failed integration step along with the iteration
// and simulated time at which the universe stopped.
type StepError struct {
	Iteration uint64
	Time      unit.Time
	Wrapped   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g ps): %v", e.Iteration, e.Time.AsPicoseconds(), e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
