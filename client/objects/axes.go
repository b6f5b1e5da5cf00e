package objects

import (
	"image/color"
	"math"
	"strconv"

	"github.com/cbodonnell/oblique/client/fonts"
	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	axisColor  = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	gridColor  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	labelColor = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

const maxTicks = 8

// AxesObject draws the frame, grid, tick labels, axis labels and title of a plot.
type AxesObject struct {
	*BaseObject

	plot     *plot.Plot
	viewport plot.Viewport
	xTicks   []float64
	yTicks   []float64
}

func NewAxesObject(id string, p *plot.Plot, viewport plot.Viewport) *AxesObject {
	return &AxesObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		plot:       p,
		viewport:   viewport,
		xTicks:     plot.Ticks(viewport.World.MinX, viewport.World.MaxX, maxTicks),
		yTicks:     plot.Ticks(viewport.World.MinY, viewport.World.MaxY, maxTicks),
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func (o *AxesObject) Draw(screen *ebiten.Image) {
	vp := o.viewport
	left, top := float32(vp.Left), float32(vp.Top)
	right, bottom := float32(vp.Left+vp.Width), float32(vp.Top+vp.Height)
	small := fonts.TTFSmallFont

	for _, x := range o.xTicks {
		sx, _ := vp.ToScreen(kinematic.Vector{X: x})
		if o.plot.Grid {
			vector.StrokeLine(screen, float32(sx), top, float32(sx), bottom, 1, gridColor, false)
		}
		vector.StrokeLine(screen, float32(sx), bottom, float32(sx), bottom+5, 1, axisColor, false)
		label := formatTick(x)
		b := text.BoundString(small, label)
		text.Draw(screen, label, small, int(sx)-b.Dx()/2, int(bottom)+8+b.Dy(), labelColor)
	}
	for _, y := range o.yTicks {
		_, sy := vp.ToScreen(kinematic.Vector{Y: y})
		if o.plot.Grid {
			vector.StrokeLine(screen, left, float32(sy), right, float32(sy), 1, gridColor, false)
		}
		vector.StrokeLine(screen, left-5, float32(sy), left, float32(sy), 1, axisColor, false)
		label := formatTick(y)
		b := text.BoundString(small, label)
		text.Draw(screen, label, small, int(left)-8-b.Dx(), int(sy)+b.Dy()/2, labelColor)
	}

	vector.StrokeRect(screen, left, top, right-left, bottom-top, 1, axisColor, false)

	normal := fonts.TTFNormalFont
	xb := text.BoundString(normal, o.plot.XLabel)
	text.Draw(screen, o.plot.XLabel, normal, int(vp.Left+vp.Width/2)-xb.Dx()/2, int(bottom)+44, labelColor)

	// the y label reads bottom to top along the left edge
	yb := text.BoundString(normal, o.plot.YLabel)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Rotate(-math.Pi / 2)
	op.GeoM.Translate(vp.Left-52, vp.Top+vp.Height/2+float64(yb.Dx())/2)
	op.ColorScale.ScaleWithColor(labelColor)
	text.DrawWithOptions(screen, o.plot.YLabel, normal, op)

	large := fonts.TTFLargeFont
	tb := text.BoundString(large, o.plot.Title)
	text.Draw(screen, o.plot.Title, large, int(vp.Left+vp.Width/2)-tb.Dx()/2, int(top)-16, labelColor)
}
