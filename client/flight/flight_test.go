package flight

import (
	"testing"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceFlight(t *testing.T, playback float64) (*Flight, kinematic.Summary) {
	t.Helper()
	e := kinematic.NewStandardEngine()
	v := kinematic.Decompose(45, 20)
	s := e.Summarize(v)
	samples := e.SampleTrajectory(v, s.FlightTime, 100)
	p := plot.NewTrajectoryPlot(samples, nil)

	f := New(NewFlightOptions{
		Samples: samples,
		Viewport: plot.Viewport{
			World:  p.Bounds(),
			Left:   80,
			Top:    60,
			Width:  640,
			Height: 360,
		},
		Playback: playback,
	})
	return f, s
}

func TestFlight_LandsAtRange(t *testing.T) {
	f, s := referenceFlight(t, 1)
	assert.Equal(t, s.FlightTime, f.Duration())
	assert.Equal(t, kinematic.Vector{}, f.Position())
	assert.False(t, f.Landed())

	steps := 0
	for !f.Landed() && steps < 1000 {
		f.Step(1.0 / 60)
		steps++
	}

	require.True(t, f.Landed())
	assert.InDelta(t, s.FlightTime*60, steps, 2)
	assert.Equal(t, s.FlightTime, f.Elapsed())
	assert.InDelta(t, s.Range, f.Position().X, 1e-9)
	assert.InDelta(t, 0, f.Position().Y, 1e-9)

	// further steps are ignored
	f.Step(1)
	assert.InDelta(t, s.Range, f.Position().X, 1e-9)
}

func TestFlight_AirborneAtApex(t *testing.T) {
	f, s := referenceFlight(t, 1)

	for f.Elapsed() < s.ApexTime() {
		f.Step(1.0 / 60)
	}
	assert.False(t, f.Landed())
	assert.InDelta(t, s.MaxHeight, f.Position().Y, 0.05)

	_, sy := f.ScreenPosition()
	assert.Less(t, sy, 100.0)
}

func TestFlight_Playback(t *testing.T) {
	f, s := referenceFlight(t, 2)
	f.Step(0.5)
	assert.InDelta(t, 1.0, f.Elapsed(), 1e-12)
	assert.False(t, f.Landed())

	f.Step(10)
	assert.True(t, f.Landed())
	assert.Equal(t, s.FlightTime, f.Elapsed())
}

func TestFlight_Reset(t *testing.T) {
	f, _ := referenceFlight(t, 1)
	f.Step(100)
	require.True(t, f.Landed())

	f.Reset()
	assert.False(t, f.Landed())
	assert.Equal(t, 0.0, f.Elapsed())
	assert.Equal(t, kinematic.Vector{}, f.Position())
}

func TestFlight_Interpolate(t *testing.T) {
	f := New(NewFlightOptions{
		Samples: []kinematic.Sample{
			{T: 0, Position: kinematic.Vector{X: 0, Y: 0}},
			{T: 1, Position: kinematic.Vector{X: 10, Y: 4}},
			{T: 2, Position: kinematic.Vector{X: 20, Y: 0}},
		},
		Viewport: plot.Viewport{World: plot.Bounds{MinX: -1, MaxX: 21, MinY: -1, MaxY: 5}, Width: 220, Height: 60},
	})

	assert.Equal(t, kinematic.Vector{X: 5, Y: 2}, f.interpolate(0.5))
	assert.Equal(t, kinematic.Vector{X: 15, Y: 2}, f.interpolate(1.5))
	assert.Equal(t, kinematic.Vector{X: 20, Y: 0}, f.interpolate(3))
	assert.Equal(t, kinematic.Vector{X: 0, Y: 0}, f.interpolate(-1))
}
