package trajectory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/unit"
	"github.com/san-kum/bibber/internal/vec"
)

func pairUniverse(t *testing.T) *engine.Universe {
	t.Helper()
	u, err := engine.New(engine.Config{
		Dt:         unit.Femtoseconds(1),
		Boundary:   vec.Splat(1000),
		Thermostat: engine.ThermostatOff,
	})
	require.NoError(t, err)
	u.AddParticles([]engine.Particle{
		engine.NewParticle(vec.Zero(), vec.Zero(), vec.Zero(), 1e-24),
		engine.NewParticle(vec.New(5e-9, 0, 0), vec.Zero(), vec.Zero(), 1e-24),
	})
	return u
}

func TestFromUniverseBindsCountAndBox(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "My universe")

	assert.Equal(t, "My universe", traj.Title)
	assert.Equal(t, 2, traj.NumParticles)
	assert.Equal(t, vec.Splat(1000), traj.BoundingBox)
	assert.Empty(t, traj.Frames)
}

func TestAddFrameDeepCopies(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "t")
	traj.AddFrame(u)

	require.NoError(t, u.Steps(2))
	traj.AddFrame(u)

	// Frame 0 must still hold the initial state.
	assert.Equal(t, vec.New(5e-9, 0, 0), traj.Frames[0].Particles[1].Pos)
	assert.Len(t, traj.Frames, 2)
	assert.True(t, traj.Frames[0].Time.IsZero())
}

func TestGROFrameZero(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "My universe")
	traj.AddFrame(u)

	got := traj.GRO()
	want := "My universe, t= 0\n" +
		"2\n" +
		"    0DUMMY  DUM    0   0.000   0.000   0.000  0.0000  0.0000  0.0000\n" +
		"    1DUMMY  DUM    1   5.000   0.000   0.000  0.0000  0.0000  0.0000\n" +
		"1000 1000 1000\n"
	assert.Equal(t, want, got)
}

func TestGROColumnWidths(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "t")
	traj.AddFrame(u)

	lines := strings.Split(traj.GRO(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	// index:5, residue+atom labels:10, index:5, 3x8 positions, 3x8 velocities.
	particleLine := lines[2]
	assert.Len(t, particleLine, 5+10+5+3*8+3*8)
}

func TestGROTimeInPicoseconds(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "t")
	require.NoError(t, u.Steps(2))
	traj.AddFrame(u)

	// 2 fs = 0.002 ps.
	assert.Contains(t, traj.GRO(), "t= 0.002")
}

func TestGROMultipleFrames(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "t")
	traj.AddFrame(u)
	require.NoError(t, u.Steps(1))
	traj.AddFrame(u)

	got := traj.GRO()
	assert.Equal(t, 2, strings.Count(got, "t, t= "))
	// 2 frames x (header + count + 2 particles + box).
	assert.Equal(t, 10, strings.Count(got, "\n"))
}

func TestWriteFile(t *testing.T) {
	u := pairUniverse(t)
	traj := FromUniverse(u, "t")
	traj.AddFrame(u)

	path := t.TempDir() + "/out.gro"
	require.NoError(t, traj.WriteFile(path))

	var sb strings.Builder
	require.NoError(t, traj.WriteGRO(&sb))
	assert.NotEmpty(t, sb.String())
}
