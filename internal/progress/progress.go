// Package progress estimates remaining wall time for a run and reports
// it periodically through the structured logger.
package progress

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/bibber/internal/engine"
)

// Estimator extrapolates remaining wall time from the steps completed
// so far.
type Estimator struct {
	start      time.Time
	totalSteps int
}

func NewEstimator(totalSteps int) *Estimator {
	return &Estimator{start: time.Now(), totalSteps: totalSteps}
}

// Remaining returns the estimated wall time left after done steps.
// Before the first completed step the estimate is zero.
func (e *Estimator) Remaining(done int) time.Duration {
	if done <= 0 {
		return 0
	}
	perStep := time.Since(e.start) / time.Duration(done)
	left := e.totalSteps - done
	if left < 0 {
		left = 0
	}
	return perStep * time.Duration(left)
}

// StepsPerSecond returns the measured integration rate.
func (e *Estimator) StepsPerSecond(done int) float64 {
	elapsed := time.Since(e.start).Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(done) / elapsed
}

// Reporter is a sim.Observer that logs progress every Every iterations.
type Reporter struct {
	est   *Estimator
	every uint64
}

// NewReporter logs every `every` steps against a totalSteps budget.
func NewReporter(totalSteps int, every uint64) *Reporter {
	if every == 0 {
		every = 100
	}
	return &Reporter{est: NewEstimator(totalSteps), every: every}
}

func (r *Reporter) OnStep(u *engine.Universe) {
	if u.Iteration()%r.every != 0 {
		return
	}
	done := int(u.Iteration())
	logrus.WithFields(logrus.Fields{
		"t_ps":          u.Time().AsPicoseconds(),
		"temperature_K": u.Temperature(),
		"steps_per_s":   r.est.StepsPerSecond(done),
		"eta":           r.est.Remaining(done).Round(time.Second).String(),
	}).Info("simulation progress")
}
