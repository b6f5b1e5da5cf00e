package query

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbodonnell/oblique/pkg/kinematic"
)

var (
	// ErrDegenerateLaunch is returned for launches that never leave the ground:
	// angles outside (0°, 180°) or a non-positive speed.
	ErrDegenerateLaunch = errors.New("degenerate launch")
	// ErrOutOfRange is returned when a launch overflows float64, e.g. an
	// infinite speed or a vanishingly small gravity.
	ErrOutOfRange = errors.New("launch out of range")
	// ErrInvalidTime is returned for query times that are negative or not a number.
	ErrInvalidTime = errors.New("invalid query time")
)

type Outcome int

const (
	// OutcomeAirborne means the projectile is still in flight at the query time.
	OutcomeAirborne Outcome = iota
	// OutcomeLanded means the query time is past the flight time.
	OutcomeLanded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAirborne:
		return "airborne"
	case OutcomeLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// ValidateLaunch rejects launches whose flight time would be zero, negative or undefined.
func ValidateLaunch(p kinematic.LaunchParameters) error {
	if math.IsNaN(p.AngleDegrees) || p.AngleDegrees <= 0 || p.AngleDegrees >= 180 {
		return fmt.Errorf("%w: launch angle must be between 0 and 180 degrees (exclusive), got %v", ErrDegenerateLaunch, p.AngleDegrees)
	}
	if math.IsNaN(p.InitialSpeed) || p.InitialSpeed <= 0 {
		return fmt.Errorf("%w: initial speed must be positive, got %v", ErrDegenerateLaunch, p.InitialSpeed)
	}
	if math.IsInf(p.InitialSpeed, 0) {
		return fmt.Errorf("%w: initial speed must be finite", ErrOutOfRange)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CheckTime applies the landing policy to a query time. Only times strictly
// greater than the flight time count as landed.
func CheckTime(s kinematic.Summary, t float64) (Outcome, error) {
	if math.IsNaN(t) || t < 0 {
		return OutcomeAirborne, fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}
	if t > s.FlightTime {
		return OutcomeLanded, nil
	}
	return OutcomeAirborne, nil
}

// Launch is a validated launch together with its derived quantities.
type Launch struct {
	Params     kinematic.LaunchParameters   `json:"params"`
	Components kinematic.VelocityComponents `json:"components"`
	Summary    kinematic.Summary            `json:"summary"`

	engine kinematic.Engine
}

// NewLaunch validates the parameters and computes the launch summary.
func NewLaunch(engine kinematic.Engine, p kinematic.LaunchParameters) (*Launch, error) {
	if err := ValidateLaunch(p); err != nil {
		return nil, err
	}
	components := engine.Decompose(p)
	summary := engine.Summarize(components)
	if !finite(components.VX, components.VY, summary.FlightTime, summary.MaxHeight, summary.Range) {
		return nil, fmt.Errorf("%w: speed %v with gravity %v", ErrOutOfRange, p.InitialSpeed, engine.Gravity())
	}
	return &Launch{
		Params:     p,
		Components: components,
		Summary:    summary,
		engine:     engine,
	}, nil
}

// Gravity returns the gravity the launch was computed with.
func (l *Launch) Gravity() float64 {
	return l.engine.Gravity()
}

// At evaluates the launch at time t. When the projectile has already landed
// the returned state is nil and nothing is computed.
func (l *Launch) At(t float64) (Outcome, *kinematic.State, error) {
	outcome, err := CheckTime(l.Summary, t)
	if err != nil {
		return outcome, nil, err
	}
	if outcome == OutcomeLanded {
		return outcome, nil, nil
	}
	state := l.engine.State(l.Components, t)
	return outcome, &state, nil
}

// Trajectory samples the full flight using the given number of steps.
func (l *Launch) Trajectory(steps int) []kinematic.Sample {
	return l.engine.SampleTrajectory(l.Components, l.Summary.FlightTime, steps)
}
