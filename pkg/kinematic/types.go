package kinematic

import "math"

// Vector is a point or direction in the launch plane, in metres.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LaunchParameters describe a single launch.
type LaunchParameters struct {
	// AngleDegrees is the angle between the initial velocity and the horizontal.
	AngleDegrees float64 `json:"angleDegrees"`
	// InitialSpeed is the launch speed in m/s.
	InitialSpeed float64 `json:"initialSpeed"`
}

// VelocityComponents are the horizontal and vertical components of the launch velocity.
type VelocityComponents struct {
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Summary holds the quantities derived once per launch.
type Summary struct {
	FlightTime float64 `json:"flightTime"`
	MaxHeight  float64 `json:"maxHeight"`
	Range      float64 `json:"range"`
}

// ApexTime returns the time at which the projectile reaches its maximum height.
func (s Summary) ApexTime() float64 {
	return s.FlightTime / 2
}

// Velocity is the instantaneous velocity of the projectile.
type Velocity struct {
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Speed float64 `json:"speed"`
}

// NewVelocity builds a Velocity from its components.
func NewVelocity(vx, vy float64) Velocity {
	return Velocity{
		VX:    vx,
		VY:    vy,
		Speed: math.Sqrt(vx*vx + vy*vy),
	}
}

// State is the position and velocity of the projectile at time T.
type State struct {
	T        float64  `json:"t"`
	Position Vector   `json:"position"`
	Velocity Velocity `json:"velocity"`
}

// Sample is a single point of a sampled trajectory.
type Sample struct {
	T        float64 `json:"t"`
	Position Vector  `json:"position"`
}
