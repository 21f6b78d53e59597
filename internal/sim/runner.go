// Package sim drives a universe from its start time to an end time,
// snapshotting frames into a trajectory along the way.
package sim

import (
	"context"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/trajectory"
	"github.com/san-kum/bibber/internal/unit"
)

// Observer is notified after every successful step. Observers run
// synchronously between steps and must not retain the universe.
type Observer interface {
	OnStep(u *engine.Universe)
}

// Result summarizes a completed (or aborted) run. A diverged run is not
// an error at this level: the trajectory recorded up to the failure
// stays valid and exportable.
type Result struct {
	StepsTaken int
	Frames     int
	SimTime    unit.Time
	// Diverged holds the step failure that ended the run early, or nil.
	Diverged error
}

// Runner owns the step loop for one run. It is not safe for concurrent
// use; the universe is exclusively mutated by Run.
type Runner struct {
	universe  *engine.Universe
	traj      *trajectory.Trajectory
	end       unit.Time
	snapshot  unit.Time
	observers []Observer
}

// NewRunner prepares a run that advances u until its clock reaches end,
// adding a trajectory frame every snapshotEvery of simulated time.
func NewRunner(u *engine.Universe, traj *trajectory.Trajectory, end, snapshotEvery unit.Time) *Runner {
	return &Runner{
		universe: u,
		traj:     traj,
		end:      end,
		snapshot: snapshotEvery,
	}
}

func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Run executes the step loop. Frame zero is always recorded before the
// first step. The returned error is non-nil only for context
// cancellation; numerical divergence ends the loop early and is
// reported through Result.Diverged with the partial trajectory intact.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	r.traj.AddFrame(r.universe)
	result.Frames++

	next := r.universe.Time().Add(r.snapshot)
	for r.universe.Time().Before(r.end) {
		select {
		case <-ctx.Done():
			result.SimTime = r.universe.Time()
			return result, ctx.Err()
		default:
		}

		if err := r.universe.Step(); err != nil {
			result.Diverged = err
			result.SimTime = r.universe.Time()
			return result, nil
		}
		result.StepsTaken++

		for _, o := range r.observers {
			o.OnStep(r.universe)
		}

		if !r.universe.Time().Before(next) {
			r.traj.AddFrame(r.universe)
			result.Frames++
			next = next.Add(r.snapshot)
		}
	}

	result.SimTime = r.universe.Time()
	return result, nil
}
