package simulation

import (
	"context"
	"slices"
	"testing"

	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLane walks a single character along the lane passed for the amount of frames passed and
// returns its recording.
func runLane(t *testing.T, lane string, frames int) *Recording {
	t.Helper()
	s := settings.DefaultSettings()
	s.Simulation.Lanes = []string{lane}

	r, _, err := NewCourse(s, nil)
	require.NoError(t, err)
	require.Len(t, r.Characters(), 1)
	require.NoError(t, r.Run(context.Background(), frames))
	return r.Characters()[0].Recording
}

func hasState(rec *Recording, state locomotion.GroundState) bool {
	return slices.ContainsFunc(rec.Samples(), func(s Sample) bool { return s.State == state })
}

func TestCourseStep(t *testing.T) {
	rec := runLane(t, "step", 240)
	last, _ := rec.Last()

	assert.Equal(t, locomotion.Grounded, last.State)
	assert.Greater(t, last.Position.Z(), float32(6))
	assert.InDelta(t, 0.25, last.Position.Y(), 0.02)
}

func TestCourseLedgeBlocks(t *testing.T) {
	rec := runLane(t, "ledge", 240)
	last, _ := rec.Last()

	assert.Equal(t, locomotion.Grounded, last.State)
	assert.Greater(t, last.Position.Z(), float32(3))
	assert.Less(t, last.Position.Z(), float32(3.7))
	assert.Less(t, rec.MaxHeight(), float32(0.05))
}

func TestCourseWallBlocks(t *testing.T) {
	rec := runLane(t, "wall", 240)
	last, _ := rec.Last()

	assert.Equal(t, locomotion.Grounded, last.State)
	assert.Greater(t, last.Position.Z(), float32(4.5))
	assert.Less(t, last.Position.Z(), float32(5.5))
}

func TestCourseRampClimbs(t *testing.T) {
	rec := runLane(t, "ramp", 240)
	assert.Greater(t, rec.MaxHeight(), float32(1))
	assert.False(t, hasState(rec, locomotion.Sliding))
}

func TestCourseSlopeSlides(t *testing.T) {
	rec := runLane(t, "slope", 360)
	last, _ := rec.Last()

	assert.True(t, hasState(rec, locomotion.Sliding))
	assert.Equal(t, locomotion.Grounded, last.State)
	assert.Less(t, last.Position.Y(), float32(0.3))
	assert.Less(t, last.Position.Z(), float32(3))
}

func TestCourseTerrain(t *testing.T) {
	rec := runLane(t, "terrain", 240)
	last, _ := rec.Last()

	assert.Greater(t, last.Position.Z(), float32(6))
	assert.Less(t, last.Position.Y(), float32(0.2))
	assert.Greater(t, rec.MaxHeight(), float32(0.05))
}

func TestCourseMesh(t *testing.T) {
	rec := runLane(t, "mesh", 240)
	assert.Greater(t, rec.MaxHeight(), float32(0.6))
}

func TestNewCourse(t *testing.T) {
	s := settings.DefaultSettings()
	s.Simulation.CharactersPerLane = 2
	r, scene, err := NewCourse(s, nil)
	require.NoError(t, err)
	assert.Len(t, r.Characters(), 14)
	assert.Equal(t, 10, scene.Len())

	require.NoError(t, r.Run(context.Background(), 30))
	chars := r.Characters()
	assert.Equal(t, chars[0].Name, chars[1].Name)
	assert.Equal(t, chars[0].Recording.Digest(), chars[1].Recording.Digest(), "characters on the same lane move identically")

	s.Simulation.Lanes = []string{"moon"}
	_, _, err = NewCourse(s, nil)
	assert.ErrorContains(t, err, "moon")

	s = settings.DefaultSettings()
	s.Simulation.CharactersPerLane = 0
	_, _, err = NewCourse(s, nil)
	assert.Error(t, err)

	s = settings.DefaultSettings()
	s.Locomotion.StepHeight = -1
	_, _, err = NewCourse(s, nil)
	assert.Error(t, err)
}
