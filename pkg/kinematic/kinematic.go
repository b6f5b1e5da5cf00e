package kinematic

// This package includes functions for the big four kinematic equations and
// the closed-form projectile model built on top of them.

import (
	"math"
)

const (
	// StandardGravity is the magnitude of Earth's gravitational acceleration in m/s².
	StandardGravity float64 = 9.81
)

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*time*time
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}

// ToRadians converts an angle in degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
