package kinematic

import (
	"fmt"
	"math"
)

// DefaultSteps is the number of intervals used when sampling a trajectory.
const DefaultSteps = 100

// Engine computes the closed-form motion of an ideal projectile under a
// constant downward gravitational acceleration. It holds no state besides the
// gravity magnitude and is safe to share.
//
// Launches with a non-positive vertical velocity (angles outside (0°, 180°) or
// a zero speed) are degenerate: flight time is zero or negative and the engine
// returns those values as computed. Rejecting them is left to the caller.
type Engine struct {
	gravity float64
}

// NewEngine returns an engine using the given gravity magnitude in m/s².
func NewEngine(gravity float64) (Engine, error) {
	if math.IsNaN(gravity) || math.IsInf(gravity, 0) || gravity <= 0 {
		return Engine{}, fmt.Errorf("gravity must be a positive finite number, got %v", gravity)
	}
	return Engine{gravity: gravity}, nil
}

// NewStandardEngine returns an engine using StandardGravity.
func NewStandardEngine() Engine {
	return Engine{gravity: StandardGravity}
}

// Gravity returns the gravity magnitude used by the engine.
func (e Engine) Gravity() float64 {
	return e.gravity
}

// Decompose splits the launch speed into horizontal and vertical components.
func Decompose(angleDegrees float64, initialSpeed float64) VelocityComponents {
	theta := ToRadians(angleDegrees)
	return VelocityComponents{
		VX: initialSpeed * math.Cos(theta),
		VY: initialSpeed * math.Sin(theta),
	}
}

// Decompose is a convenience wrapper around the package level Decompose.
func (e Engine) Decompose(p LaunchParameters) VelocityComponents {
	return Decompose(p.AngleDegrees, p.InitialSpeed)
}

// Summarize returns flight time, maximum height and range for the given launch velocity.
func (e Engine) Summarize(v VelocityComponents) Summary {
	flightTime := 2 * v.VY / e.gravity
	return Summary{
		FlightTime: flightTime,
		MaxHeight:  v.VY * v.VY / (2 * e.gravity),
		Range:      v.VX * flightTime,
	}
}

// PositionAt returns the position of the projectile t seconds after launch.
// No bounds are enforced on t.
func (e Engine) PositionAt(v VelocityComponents, t float64) Vector {
	return Vector{
		X: Displacement(v.VX, t, 0),
		Y: Displacement(v.VY, t, -e.gravity),
	}
}

// VelocityAt returns the velocity of the projectile t seconds after launch.
// The horizontal component never changes.
func (e Engine) VelocityAt(v VelocityComponents, t float64) Velocity {
	return NewVelocity(v.VX, FinalVelocity(v.VY, t, -e.gravity))
}

// State returns the full state of the projectile at time t.
func (e Engine) State(v VelocityComponents, t float64) State {
	return State{
		T:        t,
		Position: e.PositionAt(v, t),
		Velocity: e.VelocityAt(v, t),
	}
}

// SampleTrajectory returns steps+1 evenly spaced samples over [0, flightTime].
// A non-positive steps value falls back to DefaultSteps.
func (e Engine) SampleTrajectory(v VelocityComponents, flightTime float64, steps int) []Sample {
	if steps <= 0 {
		steps = DefaultSteps
	}
	samples := make([]Sample, steps+1)
	for i := range samples {
		// i/steps is exactly 1 on the last sample, so it lands on flightTime.
		t := flightTime * (float64(i) / float64(steps))
		samples[i] = Sample{
			T:        t,
			Position: e.PositionAt(v, t),
		}
	}
	return samples
}
