package objects

import (
	"image/color"

	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var MarkerColor = color.NRGBA{R: 220, G: 20, B: 20, A: 255}

// MarkerObject highlights the queried instant on the trajectory.
type MarkerObject struct {
	*BaseObject

	marker   plot.Marker
	viewport plot.Viewport
}

func NewMarkerObject(id string, marker plot.Marker, viewport plot.Viewport) *MarkerObject {
	return &MarkerObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 40}),
		marker:     marker,
		viewport:   viewport,
	}
}

func (o *MarkerObject) Draw(screen *ebiten.Image) {
	x, y := o.viewport.ToScreen(o.marker.Position)
	vector.DrawFilledCircle(screen, float32(x), float32(y), 6, MarkerColor, true)
}
