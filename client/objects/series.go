package objects

import (
	"image/color"

	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var SeriesColor = color.NRGBA{R: 31, G: 119, B: 180, A: 255}

// SeriesObject draws a plot series as a polyline.
type SeriesObject struct {
	*BaseObject

	series   plot.Series
	viewport plot.Viewport
	clr      color.Color
}

func NewSeriesObject(id string, series plot.Series, viewport plot.Viewport) *SeriesObject {
	return &SeriesObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 20}),
		series:     series,
		viewport:   viewport,
		clr:        SeriesColor,
	}
}

func (o *SeriesObject) Draw(screen *ebiten.Image) {
	pts := o.series.Points
	for i := 1; i < len(pts); i++ {
		x0, y0 := o.viewport.ToScreen(pts[i-1])
		x1, y1 := o.viewport.ToScreen(pts[i])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, o.clr, true)
	}
}
