package plot

import (
	"math"

	"github.com/cbodonnell/oblique/pkg/kinematic"
)

// Viewport maps world coordinates inside Bounds onto a screen rectangle whose
// Y axis grows downwards.
type Viewport struct {
	World  Bounds
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// ToScreen converts a world point to screen coordinates.
func (v Viewport) ToScreen(p kinematic.Vector) (float64, float64) {
	sx := v.Left + (p.X-v.World.MinX)/v.World.Width()*v.Width
	sy := v.Top + v.Height - (p.Y-v.World.MinY)/v.World.Height()*v.Height
	return sx, sy
}

// ToWorld converts screen coordinates back to a world point.
func (v Viewport) ToWorld(sx, sy float64) kinematic.Vector {
	return kinematic.Vector{
		X: v.World.MinX + (sx-v.Left)/v.Width*v.World.Width(),
		Y: v.World.MinY + (v.Top+v.Height-sy)/v.Height*v.World.Height(),
	}
}

// Ticks returns evenly spaced "nice" tick values (1, 2 or 5 times a power of
// ten) covering [min, max] with at most maxTicks entries.
func Ticks(min, max float64, maxTicks int) []float64 {
	if maxTicks < 2 || !(max > min) || math.IsInf(max-min, 0) {
		return nil
	}
	step := niceStep((max - min) / float64(maxTicks-1))
	start := math.Ceil(min/step) * step
	ticks := make([]float64, 0, maxTicks)
	for v := start; v <= max+step*1e-9; v += step {
		// snap to a multiple of step so error does not accumulate; +0 turns -0 into 0
		ticks = append(ticks, math.Round(v/step)*step+0)
		if len(ticks) > maxTicks {
			break
		}
	}
	return ticks
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}
