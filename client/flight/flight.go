// Package flight animates a projectile along a sampled trajectory on screen.
// Landing is detected with a resolv collision against a ground object laid
// along the zero height line of the plot.
package flight

import (
	"math"
	"sort"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagGround     = "ground"
	CollisionSpaceTagProjectile = "projectile"

	cellSize = 4
)

type Flight struct {
	samples  []kinematic.Sample
	viewport plot.Viewport
	playback float64
	size     float64

	space  *resolv.Space
	object *resolv.Object
	ground *resolv.Object

	elapsed  float64
	position kinematic.Vector
	landed   bool
}

type NewFlightOptions struct {
	// Samples is the timed trajectory to follow. It must not be empty.
	Samples []kinematic.Sample
	// Viewport maps the trajectory to screen pixels.
	Viewport plot.Viewport
	// Playback is the number of flight seconds shown per real second. Defaults to 1.
	Playback float64
	// Size is the projectile edge length in pixels. Defaults to 8.
	Size float64
}

func New(opts NewFlightOptions) *Flight {
	playback := opts.Playback
	if playback <= 0 {
		playback = 1
	}
	size := opts.Size
	if size <= 0 {
		size = 8
	}

	vp := opts.Viewport
	spaceW := int(math.Ceil(vp.Left+vp.Width)) + cellSize
	spaceH := int(math.Ceil(vp.Top+vp.Height)) + cellSize
	space := resolv.NewSpace(spaceW, spaceH, cellSize, cellSize)

	_, groundY := vp.ToScreen(kinematic.Vector{})
	ground := resolv.NewObject(vp.Left, groundY, vp.Width, math.Max(vp.Top+vp.Height-groundY, 1), CollisionSpaceTagGround)

	f := &Flight{
		samples:  opts.Samples,
		viewport: vp,
		playback: playback,
		size:     size,
		space:    space,
		ground:   ground,
	}
	if len(f.samples) > 0 {
		f.position = f.samples[0].Position
	}
	sx, sy := f.ScreenPosition()
	f.object = resolv.NewObject(sx-size/2, sy-size, size, size, CollisionSpaceTagProjectile)
	space.Add(ground, f.object)
	return f
}

// Duration returns the flight time covered by the samples.
func (f *Flight) Duration() float64 {
	if len(f.samples) == 0 {
		return 0
	}
	return f.samples[len(f.samples)-1].T
}

func (f *Flight) Elapsed() float64 {
	return f.elapsed
}

func (f *Flight) Landed() bool {
	return f.landed
}

// Position returns the current world position of the projectile.
func (f *Flight) Position() kinematic.Vector {
	return f.position
}

// ScreenPosition returns the current screen position of the projectile.
func (f *Flight) ScreenPosition() (float64, float64) {
	return f.viewport.ToScreen(f.position)
}

// Reset moves the projectile back to the launch point.
func (f *Flight) Reset() {
	f.elapsed = 0
	f.landed = false
	if len(f.samples) > 0 {
		f.position = f.samples[0].Position
	}
	f.syncObject()
}

// Step advances the animation by dt real seconds.
func (f *Flight) Step(dt float64) {
	if f.landed || len(f.samples) == 0 {
		return
	}

	f.elapsed = math.Min(f.elapsed+dt*f.playback, f.Duration())
	next := f.interpolate(f.elapsed)

	sx, sy := f.ScreenPosition()
	nx, ny := f.viewport.ToScreen(next)
	dx, dy := nx-sx, ny-sy

	// only a descending projectile can hit the ground
	if dy > 0 {
		if collision := f.object.Check(dx, dy, CollisionSpaceTagGround); collision != nil {
			f.land()
			return
		}
	}

	f.position = next
	f.syncObject()
	if f.elapsed >= f.Duration() {
		f.land()
	}
}

func (f *Flight) land() {
	f.landed = true
	f.elapsed = f.Duration()
	f.position = f.samples[len(f.samples)-1].Position
	f.syncObject()
}

func (f *Flight) syncObject() {
	sx, sy := f.ScreenPosition()
	f.object.Position.X = sx - f.size/2
	f.object.Position.Y = sy - f.size
	f.object.Update()
}

// interpolate returns the position at time t by linear interpolation between samples.
func (f *Flight) interpolate(t float64) kinematic.Vector {
	i := sort.Search(len(f.samples), func(i int) bool {
		return f.samples[i].T >= t
	})
	if i == 0 {
		return f.samples[0].Position
	}
	if i >= len(f.samples) {
		return f.samples[len(f.samples)-1].Position
	}
	a, b := f.samples[i-1], f.samples[i]
	span := b.T - a.T
	if span <= 0 {
		return b.Position
	}
	w := (t - a.T) / span
	return kinematic.Vector{
		X: a.Position.X + (b.Position.X-a.Position.X)*w,
		Y: a.Position.Y + (b.Position.Y-a.Position.Y)*w,
	}
}
