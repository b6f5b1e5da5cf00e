package query

import (
	"math"
	"testing"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLaunch(t *testing.T) {
	tests := []struct {
		name    string
		params  kinematic.LaunchParameters
		wantErr bool
	}{
		{name: "reference launch", params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: 20}},
		{name: "steep", params: kinematic.LaunchParameters{AngleDegrees: 89.9, InitialSpeed: 1}},
		{name: "backwards", params: kinematic.LaunchParameters{AngleDegrees: 135, InitialSpeed: 5}},
		{name: "level", params: kinematic.LaunchParameters{AngleDegrees: 0, InitialSpeed: 20}, wantErr: true},
		{name: "downward", params: kinematic.LaunchParameters{AngleDegrees: -10, InitialSpeed: 20}, wantErr: true},
		{name: "flat backwards", params: kinematic.LaunchParameters{AngleDegrees: 180, InitialSpeed: 20}, wantErr: true},
		{name: "beyond half turn", params: kinematic.LaunchParameters{AngleDegrees: 200, InitialSpeed: 20}, wantErr: true},
		{name: "zero speed", params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: 0}, wantErr: true},
		{name: "negative speed", params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: -3}, wantErr: true},
		{name: "nan angle", params: kinematic.LaunchParameters{AngleDegrees: math.NaN(), InitialSpeed: 3}, wantErr: true},
		{name: "nan speed", params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: math.NaN()}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLaunch(tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDegenerateLaunch)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckTime(t *testing.T) {
	summary := kinematic.Summary{FlightTime: 2.5}

	tests := []struct {
		name    string
		t       float64
		want    Outcome
		wantErr error
	}{
		{name: "launch instant", t: 0, want: OutcomeAirborne},
		{name: "mid flight", t: 1.2, want: OutcomeAirborne},
		{name: "landing instant", t: 2.5, want: OutcomeAirborne},
		{name: "after landing", t: 2.5000001, want: OutcomeLanded},
		{name: "long after", t: 100, want: OutcomeLanded},
		{name: "negative", t: -0.1, wantErr: ErrInvalidTime},
		{name: "nan", t: math.NaN(), wantErr: ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckTime(summary, tt.t)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLaunch_ReferenceScenario(t *testing.T) {
	launch, err := NewLaunch(kinematic.NewStandardEngine(), kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: 20})
	require.NoError(t, err)

	assert.InDelta(t, 2.88, launch.Summary.FlightTime, 0.005)
	assert.InDelta(t, 10.19, launch.Summary.MaxHeight, 0.005)
	assert.InDelta(t, 40.77, launch.Summary.Range, 0.005)
	assert.Equal(t, kinematic.StandardGravity, launch.Gravity())

	outcome, state, err := launch.At(1.0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAirborne, outcome)
	require.NotNil(t, state)
	assert.InDelta(t, 14.14, state.Velocity.VX, 0.005)
	assert.InDelta(t, 14.14, state.Position.X, 0.005)

	outcome, state, err = launch.At(5.0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLanded, outcome)
	assert.Nil(t, state)
}

func TestLaunch_AtFlightTime(t *testing.T) {
	launch, err := NewLaunch(kinematic.NewStandardEngine(), kinematic.LaunchParameters{AngleDegrees: 30, InitialSpeed: 20})
	require.NoError(t, err)

	outcome, state, err := launch.At(launch.Summary.FlightTime)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAirborne, outcome)
	require.NotNil(t, state)
	assert.InDelta(t, 0, state.Position.Y, 1e-9)
	assert.InDelta(t, launch.Summary.Range, state.Position.X, 1e-9)
}

func TestLaunch_Degenerate(t *testing.T) {
	launch, err := NewLaunch(kinematic.NewStandardEngine(), kinematic.LaunchParameters{AngleDegrees: 0, InitialSpeed: 20})
	assert.ErrorIs(t, err, ErrDegenerateLaunch)
	assert.Nil(t, launch)
}

func TestLaunch_OutOfRange(t *testing.T) {
	tiny, err := kinematic.NewEngine(1e-320)
	require.NoError(t, err)

	tests := []struct {
		name   string
		engine kinematic.Engine
		params kinematic.LaunchParameters
	}{
		{name: "infinite speed", engine: kinematic.NewStandardEngine(), params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: math.Inf(1)}},
		{name: "overflowing height", engine: kinematic.NewStandardEngine(), params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: 1e308}},
		{name: "denormal gravity", engine: tiny, params: kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launch, err := NewLaunch(tt.engine, tt.params)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Nil(t, launch)
		})
	}
}

func TestLaunch_Trajectory(t *testing.T) {
	launch, err := NewLaunch(kinematic.NewStandardEngine(), kinematic.LaunchParameters{AngleDegrees: 45, InitialSpeed: 20})
	require.NoError(t, err)

	samples := launch.Trajectory(100)
	require.Len(t, samples, 101)
	assert.Equal(t, launch.Summary.FlightTime, samples[100].T)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "airborne", OutcomeAirborne.String())
	assert.Equal(t, "landed", OutcomeLanded.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{text: "45", want: 45},
		{text: "  20.5 \r", want: 20.5},
		{text: "1e1", want: 10},
		{text: "-3", want: -3},
		{text: "", wantErr: true},
		{text: "abc", wantErr: true},
		{text: "4,5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseNumber(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
