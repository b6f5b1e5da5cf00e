package objects

import (
	"image/color"

	"github.com/cbodonnell/oblique/client/fonts"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LegendObject lists the series and the marker in the top right corner of the plot area.
type LegendObject struct {
	*BaseObject

	plot     *plot.Plot
	viewport plot.Viewport
}

func NewLegendObject(id string, p *plot.Plot, viewport plot.Viewport) *LegendObject {
	return &LegendObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 50}),
		plot:       p,
		viewport:   viewport,
	}
}

func (o *LegendObject) Draw(screen *ebiten.Image) {
	const rowHeight, swatch, pad = 20, 24, 8
	f := fonts.TTFSmallFont

	rows := len(o.plot.Series)
	if o.plot.Marker != nil {
		rows++
	}
	if rows == 0 {
		return
	}

	width := 0
	for _, s := range o.plot.Series {
		width = max(width, text.BoundString(f, s.Label).Dx())
	}
	if o.plot.Marker != nil {
		width = max(width, text.BoundString(f, o.plot.Marker.Label).Dx())
	}
	boxW := float32(width + swatch + 3*pad)
	boxH := float32(rows*rowHeight + pad)
	x := float32(o.viewport.Left+o.viewport.Width) - boxW - pad
	y := float32(o.viewport.Top) + pad

	vector.DrawFilledRect(screen, x, y, boxW, boxH, color.NRGBA{R: 255, G: 255, B: 255, A: 230}, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 1, gridColor, false)

	rowY := y + pad/2 + rowHeight/2
	for _, s := range o.plot.Series {
		vector.StrokeLine(screen, x+pad, rowY, x+pad+swatch, rowY, 2, SeriesColor, true)
		text.Draw(screen, s.Label, f, int(x+2*pad+swatch), int(rowY)+5, labelColor)
		rowY += rowHeight
	}
	if o.plot.Marker != nil {
		vector.DrawFilledCircle(screen, x+pad+swatch/2, rowY, 5, MarkerColor, true)
		text.Draw(screen, o.plot.Marker.Label, f, int(x+2*pad+swatch), int(rowY)+5, labelColor)
	}
}
