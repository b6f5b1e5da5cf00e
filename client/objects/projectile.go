package objects

import (
	"image/color"

	"github.com/cbodonnell/oblique/client/flight"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var projectileColor = color.NRGBA{R: 255, G: 140, B: 0, A: 255}

// ProjectileObject animates a projectile along the trajectory and restarts
// shortly after it lands.
type ProjectileObject struct {
	*BaseObject

	flight *flight.Flight
	// pause counts ticks spent on the ground before the animation restarts.
	pause int
}

func NewProjectileObject(id string, f *flight.Flight) *ProjectileObject {
	return &ProjectileObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 30}),
		flight:     f,
	}
}

func (o *ProjectileObject) Update() error {
	if o.flight.Landed() {
		o.pause++
		if o.pause >= ebiten.TPS() {
			o.pause = 0
			o.flight.Reset()
		}
		return nil
	}
	o.flight.Step(1 / float64(ebiten.TPS()))
	return nil
}

func (o *ProjectileObject) Draw(screen *ebiten.Image) {
	x, y := o.flight.ScreenPosition()
	vector.DrawFilledCircle(screen, float32(x), float32(y), 4, projectileColor, true)
}
