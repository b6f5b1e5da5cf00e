package kinematic

import (
	"sort"
	"strings"
)

// surfaceGravity maps celestial bodies to their surface gravity in m/s².
var surfaceGravity = map[string]float64{
	"mercury": 3.70,
	"venus":   8.87,
	"earth":   StandardGravity,
	"moon":    1.62,
	"mars":    3.71,
	"jupiter": 24.79,
	"saturn":  10.44,
	"uranus":  8.69,
	"neptune": 11.15,
	"pluto":   0.62,
	"sun":     274.0,
}

// GravityFor returns the surface gravity of the named body. Names are case insensitive.
func GravityFor(body string) (float64, bool) {
	g, ok := surfaceGravity[strings.ToLower(strings.TrimSpace(body))]
	return g, ok
}

// Bodies returns the names of all known bodies in alphabetical order.
func Bodies() []string {
	names := make([]string, 0, len(surfaceGravity))
	for name := range surfaceGravity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
