package kinematic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestDisplacementAndFinalVelocity(t *testing.T) {
	tests := []struct {
		name         string
		v0           float64
		time         float64
		acceleration float64
		wantDisp     float64
		wantVel      float64
	}{
		{name: "no acceleration", v0: 3, time: 2, acceleration: 0, wantDisp: 6, wantVel: 3},
		{name: "free fall", v0: 0, time: 1, acceleration: -StandardGravity, wantDisp: -4.905, wantVel: -9.81},
		{name: "thrown up", v0: 10, time: 2, acceleration: -10, wantDisp: 0, wantVel: -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantDisp, Displacement(tt.v0, tt.time, tt.acceleration), tolerance)
			assert.InDelta(t, tt.wantVel, FinalVelocity(tt.v0, tt.time, tt.acceleration), tolerance)
		})
	}
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		gravity float64
		wantErr bool
	}{
		{name: "earth", gravity: StandardGravity},
		{name: "moon", gravity: 1.62},
		{name: "zero", gravity: 0, wantErr: true},
		{name: "negative", gravity: -9.81, wantErr: true},
		{name: "nan", gravity: math.NaN(), wantErr: true},
		{name: "inf", gravity: math.Inf(1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.gravity)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.gravity, e.Gravity())
		})
	}
}

func TestDecompose(t *testing.T) {
	for _, angle := range []float64{-30, 0, 15, 30, 45, 60, 89.9, 90, 120, 179, 270} {
		for _, speed := range []float64{0, 1, 20, 333.3} {
			v := Decompose(angle, speed)
			assert.InDelta(t, speed*speed, v.VX*v.VX+v.VY*v.VY, 1e-9*math.Max(1, speed*speed), "angle=%v speed=%v", angle, speed)
		}
	}

	v := Decompose(90, 10)
	assert.InDelta(t, 0, v.VX, 1e-12)
	assert.InDelta(t, 10, v.VY, 1e-12)
}

func TestSummarize(t *testing.T) {
	e := NewStandardEngine()
	for _, angle := range []float64{1, 30, 45, 60, 89, 135} {
		v := Decompose(angle, 20)
		s := e.Summarize(v)
		assert.Equal(t, 2*v.VY/StandardGravity, s.FlightTime)
		assert.Equal(t, v.VY*v.VY/(2*StandardGravity), s.MaxHeight)
		assert.Equal(t, v.VX*s.FlightTime, s.Range)
	}
}

func TestSummarize_ReferenceLaunch(t *testing.T) {
	e := NewStandardEngine()
	s := e.Summarize(Decompose(45, 20))

	assert.InDelta(t, 2.88, s.FlightTime, 0.005)
	assert.InDelta(t, 10.19, s.MaxHeight, 0.005)
	assert.InDelta(t, 40.77, s.Range, 0.005)
	assert.InDelta(t, s.FlightTime/2, s.ApexTime(), tolerance)
}

func TestSummarize_AlternateGravity(t *testing.T) {
	moon, err := NewEngine(1.62)
	require.NoError(t, err)
	earth := NewStandardEngine()

	v := Decompose(45, 20)
	ms, es := moon.Summarize(v), earth.Summarize(v)

	assert.InDelta(t, 17.4594, ms.FlightTime, 1e-4)
	assert.InDelta(t, 61.7284, ms.MaxHeight, 1e-4)
	assert.InDelta(t, 246.9136, ms.Range, 1e-4)
	assert.InDelta(t, es.Range*StandardGravity/1.62, ms.Range, 1e-9)
}

func TestSummarize_Degenerate(t *testing.T) {
	e := NewStandardEngine()

	level := e.Summarize(Decompose(0, 20))
	assert.Equal(t, 0.0, level.FlightTime)
	assert.Equal(t, 0.0, level.MaxHeight)
	assert.Equal(t, 0.0, level.Range)

	down := e.Summarize(Decompose(-30, 20))
	assert.Less(t, down.FlightTime, 0.0)
	assert.Less(t, down.Range, 0.0)
}

func TestLandingAndApex(t *testing.T) {
	e := NewStandardEngine()
	for _, angle := range []float64{5, 30, 45, 60, 85, 120} {
		for _, speed := range []float64{1, 20, 150} {
			v := Decompose(angle, speed)
			s := e.Summarize(v)

			landing := e.PositionAt(v, s.FlightTime)
			assert.InDelta(t, 0, landing.Y, 1e-6*s.MaxHeight+1e-12, "angle=%v speed=%v", angle, speed)
			assert.InDelta(t, s.Range, landing.X, 1e-9*math.Abs(s.Range)+1e-12)

			apex := e.PositionAt(v, s.ApexTime())
			assert.InDelta(t, s.MaxHeight, apex.Y, 1e-9*s.MaxHeight+1e-12, "angle=%v speed=%v", angle, speed)

			assert.InDelta(t, 0, e.VelocityAt(v, s.ApexTime()).VY, 1e-9*speed)
		}
	}
}

func TestVelocityAt(t *testing.T) {
	e := NewStandardEngine()
	v := Decompose(45, 20)

	for _, tm := range []float64{-1, 0, 0.5, 1, 2.88, 10} {
		got := e.VelocityAt(v, tm)
		assert.Equal(t, v.VX, got.VX, "horizontal velocity must not change, t=%v", tm)
		assert.InDelta(t, v.VY-StandardGravity*tm, got.VY, tolerance)
		assert.InDelta(t, math.Hypot(got.VX, got.VY), got.Speed, tolerance)
	}

	atLaunch := e.VelocityAt(v, 0)
	assert.InDelta(t, 20, atLaunch.Speed, tolerance)
}

func TestState_ReferenceQuery(t *testing.T) {
	e := NewStandardEngine()
	st := e.State(Decompose(45, 20), 1.0)

	assert.Equal(t, 1.0, st.T)
	assert.InDelta(t, 14.14, st.Velocity.VX, 0.005)
	assert.InDelta(t, 4.33, st.Velocity.VY, 0.005)
	assert.InDelta(t, 14.79, st.Velocity.Speed, 0.005)
	assert.InDelta(t, 14.14, st.Position.X, 0.005)
	assert.InDelta(t, 9.24, st.Position.Y, 0.005)
}

func TestSampleTrajectory(t *testing.T) {
	e := NewStandardEngine()
	v := Decompose(45, 20)
	s := e.Summarize(v)

	samples := e.SampleTrajectory(v, s.FlightTime, 100)
	require.Len(t, samples, 101)
	assert.Equal(t, Sample{}, samples[0])
	assert.Equal(t, s.FlightTime, samples[100].T)
	assert.InDelta(t, 0, samples[100].Position.Y, 1e-9)
	assert.InDelta(t, s.Range, samples[100].Position.X, 1e-9)

	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].T, samples[i-1].T)
		assert.Equal(t, e.PositionAt(v, samples[i].T), samples[i].Position)
	}

	again := e.SampleTrajectory(v, s.FlightTime, 100)
	assert.Equal(t, samples, again)
}

func TestSampleTrajectory_Steps(t *testing.T) {
	e := NewStandardEngine()
	v := Decompose(60, 10)
	s := e.Summarize(v)

	assert.Len(t, e.SampleTrajectory(v, s.FlightTime, 10), 11)
	assert.Len(t, e.SampleTrajectory(v, s.FlightTime, 1), 2)
	assert.Len(t, e.SampleTrajectory(v, s.FlightTime, 0), DefaultSteps+1)
	assert.Len(t, e.SampleTrajectory(v, s.FlightTime, -5), DefaultSteps+1)
}

func TestSampleTrajectory_ZeroFlightTime(t *testing.T) {
	e := NewStandardEngine()
	samples := e.SampleTrajectory(Decompose(0, 20), 0, 100)
	require.Len(t, samples, 101)
	for _, s := range samples {
		assert.Equal(t, Sample{}, s)
	}
}

func TestGravityFor(t *testing.T) {
	g, ok := GravityFor("Earth")
	require.True(t, ok)
	assert.Equal(t, StandardGravity, g)

	g, ok = GravityFor(" moon ")
	require.True(t, ok)
	assert.Equal(t, 1.62, g)

	_, ok = GravityFor("vulcan")
	assert.False(t, ok)

	bodies := Bodies()
	assert.Contains(t, bodies, "mars")
	assert.IsIncreasing(t, bodies)
}
