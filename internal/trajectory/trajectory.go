// Package trajectory records universe snapshots and serializes them to
// the GRO text format understood by conventional MD trajectory viewers.
package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/unit"
	"github.com/san-kum/bibber/internal/vec"
)

// Frame is an immutable snapshot of the universe at one instant. Its
// particle slice shares no storage with the live universe.
type Frame struct {
	Time      unit.Time
	Particles []engine.Particle
}

// Trajectory is an append-only sequence of frames bound to the particle
// count and bounding box of the universe it was created from.
type Trajectory struct {
	Title        string
	NumParticles int
	BoundingBox  vec.Vec3
	Frames       []Frame
}

// FromUniverse initializes an empty trajectory bound to the universe's
// current particle count and boundary.
func FromUniverse(u *engine.Universe, title string) *Trajectory {
	return &Trajectory{
		Title:        title,
		NumParticles: u.NumParticles(),
		BoundingBox:  u.Boundary(),
	}
}

// AddFrame deep-copies the universe's current state into a new frame.
func (t *Trajectory) AddFrame(u *engine.Universe) {
	t.Frames = append(t.Frames, Frame{
		Time:      u.Time(),
		Particles: u.Snapshot(),
	})
}

// WriteGRO serializes every frame. Each frame is a title line with the
// time in picoseconds, the particle count, one fixed-width record per
// particle (position in nanometers, velocity in km/s) and the box
// dimensions. The column widths are load-bearing for downstream
// viewers.
func (t *Trajectory) WriteGRO(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, frame := range t.Frames {
		fmt.Fprintf(bw, "%s, t= %v\n%d\n", t.Title, frame.Time.AsPicoseconds(), t.NumParticles)
		for i, p := range frame.Particles {
			pos := p.Pos.Scale(1e9)  // nm
			vel := p.Vel.Scale(1e-3) // km/s
			fmt.Fprintf(bw, "%5dDUMMY  DUM%5d%8.3f%8.3f%8.3f%8.4f%8.4f%8.4f\n",
				i, i, pos.X, pos.Y, pos.Z, vel.X, vel.Y, vel.Z)
		}
		fmt.Fprintf(bw, "%v %v %v\n", t.BoundingBox.X, t.BoundingBox.Y, t.BoundingBox.Z)
	}
	return bw.Flush()
}

// GRO returns the serialized trajectory as a string.
func (t *Trajectory) GRO() string {
	var sb strings.Builder
	_ = t.WriteGRO(&sb) // strings.Builder never errors
	return sb.String()
}

// WriteFile writes the GRO serialization to path.
func (t *Trajectory) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteGRO(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
