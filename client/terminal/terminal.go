// Package terminal draws trajectory plots as text in a tcell screen.
package terminal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/cbodonnell/oblique/pkg/session"
	"github.com/gdamore/tcell/v2"
)

const (
	marginLeft   = 9
	marginTop    = 2
	marginRight  = 2
	marginBottom = 4

	MinWidth  = 30
	MinHeight = 12

	maxTicksX = 6
	maxTicksY = 5
)

var (
	styleAxis   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGrid   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleSeries = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	runeSeries = '•'
	runeMarker = '●'
	runeGrid   = '·'
)

// Renderer shows a plot in the terminal until a key is pressed.
type Renderer struct {
	// NewScreen opens the screen to draw on. Defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

var _ session.Renderer = &Renderer{}

func (r *Renderer) Render(p *plot.Plot) error {
	newScreen := r.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	for {
		Draw(screen, p)
		screen.Show()

		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// PlotViewport lays the plot area out inside a screen of w by h cells.
// Columns Left..Left+Width and rows Top..Top+Height are drawable.
func PlotViewport(p *plot.Plot, w, h int) plot.Viewport {
	return plot.Viewport{
		World:  p.Bounds(),
		Left:   marginLeft,
		Top:    marginTop,
		Width:  float64(w - marginLeft - marginRight - 1),
		Height: float64(h - marginTop - marginBottom - 1),
	}
}

// Draw renders p onto screen without showing it.
func Draw(screen tcell.Screen, p *plot.Plot) {
	screen.Clear()
	w, h := screen.Size()
	if w < MinWidth || h < MinHeight {
		drawText(screen, 0, 0, "terminal too small", styleLabel)
		return
	}

	vp := PlotViewport(p, w, h)
	left, top := marginLeft, marginTop
	right, bottom := left+int(vp.Width), top+int(vp.Height)

	drawCentered(screen, 0, w, p.Title, styleTitle)

	xTicks := plot.Ticks(vp.World.MinX, vp.World.MaxX, maxTicksX)
	yTicks := plot.Ticks(vp.World.MinY, vp.World.MaxY, maxTicksY)

	if p.Grid {
		for _, x := range xTicks {
			col := cell(vp.ToScreen(plotPoint(x, vp.World.MinY)))
			for row := top; row <= bottom; row++ {
				screen.SetContent(col.x, row, runeGrid, nil, styleGrid)
			}
		}
		for _, y := range yTicks {
			row := cell(vp.ToScreen(plotPoint(vp.World.MinX, y)))
			for col := left; col <= right; col++ {
				screen.SetContent(col, row.y, runeGrid, nil, styleGrid)
			}
		}
	}

	// axes sit one cell outside the drawable area
	for row := top; row <= bottom; row++ {
		screen.SetContent(left-1, row, '│', nil, styleAxis)
	}
	for col := left; col <= right; col++ {
		screen.SetContent(col, bottom+1, '─', nil, styleAxis)
	}
	screen.SetContent(left-1, bottom+1, '└', nil, styleAxis)

	for _, x := range xTicks {
		c := cell(vp.ToScreen(plotPoint(x, vp.World.MinY)))
		label := formatTick(x)
		drawText(screen, c.x-len(label)/2, bottom+2, label, styleLabel)
	}
	for _, y := range yTicks {
		c := cell(vp.ToScreen(plotPoint(vp.World.MinX, y)))
		label := formatTick(y)
		drawText(screen, left-2-len(label), c.y, label, styleLabel)
	}
	drawCentered(screen, bottom+3, w, p.XLabel, styleLabel)
	drawText(screen, 0, 1, p.YLabel, styleLabel)

	for _, s := range p.Series {
		for i := 1; i < len(s.Points); i++ {
			a := cell(vp.ToScreen(s.Points[i-1]))
			b := cell(vp.ToScreen(s.Points[i]))
			drawSegment(screen, a, b, runeSeries, styleSeries)
		}
		if len(s.Points) == 1 {
			c := cell(vp.ToScreen(s.Points[0]))
			screen.SetContent(c.x, c.y, runeSeries, nil, styleSeries)
		}
	}

	if p.Marker != nil {
		c := cell(vp.ToScreen(p.Marker.Position))
		screen.SetContent(c.x, c.y, runeMarker, nil, styleMarker)
	}

	drawLegend(screen, p, right, top)
}

func drawLegend(screen tcell.Screen, p *plot.Plot, right, top int) {
	type entry struct {
		r     rune
		style tcell.Style
		label string
	}
	entries := make([]entry, 0, len(p.Series)+1)
	for _, s := range p.Series {
		entries = append(entries, entry{runeSeries, styleSeries, s.Label})
	}
	if p.Marker != nil {
		entries = append(entries, entry{runeMarker, styleMarker, p.Marker.Label})
	}

	width := 0
	for _, e := range entries {
		width = max(width, len([]rune(e.label))+2)
	}
	for i, e := range entries {
		x := right - width + 1
		screen.SetContent(x, top+i, e.r, nil, e.style)
		screen.SetContent(x+1, top+i, ' ', nil, styleLabel)
		drawText(screen, x+2, top+i, e.label, styleLabel)
	}
}

type point struct {
	x, y int
}

func cell(x, y float64) point {
	return point{x: int(math.Round(x)), y: int(math.Round(y))}
}

func plotPoint(x, y float64) kinematic.Vector {
	return kinematic.Vector{X: x, Y: y}
}

// drawSegment fills the cells between a and b so sparse samples still read as a line.
func drawSegment(screen tcell.Screen, a, b point, r rune, style tcell.Style) {
	dx, dy := b.x-a.x, b.y-a.y
	n := max(abs(dx), abs(dy))
	if n == 0 {
		screen.SetContent(a.x, a.y, r, nil, style)
		return
	}
	for i := 0; i <= n; i++ {
		x := a.x + int(math.Round(float64(dx*i)/float64(n)))
		y := a.y + int(math.Round(float64(dy*i)/float64(n)))
		screen.SetContent(x, y, r, nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCentered(screen tcell.Screen, y, w int, text string, style tcell.Style) {
	drawText(screen, (w-len([]rune(text)))/2, y, text, style)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}
