// Package plot describes a trajectory plot independently of how it is drawn.
// The window and terminal renderers both consume a *Plot and use Viewport to
// map world coordinates onto their own surfaces.
package plot

import (
	"math"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/report"
)

const (
	DefaultTitle  = "Oblique Projectile Motion"
	DefaultXLabel = "Horizontal Distance (m)"
	DefaultYLabel = "Height (m)"
	SeriesLabel   = "Trajectory"
)

type Series struct {
	Label  string
	Points []kinematic.Vector
}

type Marker struct {
	Label    string
	Position kinematic.Vector
}

type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Grid   bool
	Series []Series
	// Marker highlights the queried instant. It may be nil.
	Marker *Marker
	// Samples keeps the timed trajectory so renderers can animate it.
	Samples []kinematic.Sample
}

// NewTrajectoryPlot builds the standard plot of a sampled trajectory with the
// queried state highlighted.
func NewTrajectoryPlot(samples []kinematic.Sample, state *kinematic.State) *Plot {
	points := make([]kinematic.Vector, len(samples))
	for i, s := range samples {
		points[i] = s.Position
	}
	p := &Plot{
		Title:   DefaultTitle,
		XLabel:  DefaultXLabel,
		YLabel:  DefaultYLabel,
		Grid:    true,
		Series:  []Series{{Label: SeriesLabel, Points: points}},
		Samples: samples,
	}
	if state != nil {
		p.Marker = &Marker{
			Label:    report.FormatMarkerLabel(state.T),
			Position: state.Position,
		}
	}
	return p
}

// Bounds is an axis aligned rectangle in world coordinates.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Bounds returns the data bounds of every series point and the marker, padded
// by 5% on each side. The origin is always included and an empty span is
// widened to one metre so the viewport never divides by zero.
func (p *Plot) Bounds() Bounds {
	b := Bounds{}
	include := func(v kinematic.Vector) {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return
		}
		b.MinX = math.Min(b.MinX, v.X)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	for _, s := range p.Series {
		for _, pt := range s.Points {
			include(pt)
		}
	}
	if p.Marker != nil {
		include(p.Marker.Position)
	}

	if b.Width() == 0 {
		b.MaxX = b.MinX + 1
	}
	if b.Height() == 0 {
		b.MaxY = b.MinY + 1
	}
	padX, padY := b.Width()*0.05, b.Height()*0.05
	b.MinX -= padX
	b.MaxX += padX
	b.MinY -= padY
	b.MaxY += padY
	return b
}
