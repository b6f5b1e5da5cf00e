package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/oblique/client/flight"
	"github.com/cbodonnell/oblique/client/objects"
	"github.com/cbodonnell/oblique/pkg/plot"
)

const (
	plotMarginLeft   = 90
	plotMarginTop    = 60
	plotMarginRight  = 30
	plotMarginBottom = 70
)

type PlotScene struct {
	*BaseScene

	plot   *plot.Plot
	flight *flight.Flight
}

type PlotSceneOptions struct {
	Plot *plot.Plot
	// ScreenWidth and ScreenHeight are the logical screen size the plot is laid out in.
	ScreenWidth  int
	ScreenHeight int
	// Animate adds a projectile that flies along the sampled trajectory.
	Animate bool
}

var _ Scene = &PlotScene{}

// PlotViewport lays the plot area out inside a screen of the given size.
func PlotViewport(p *plot.Plot, screenWidth, screenHeight int) plot.Viewport {
	return plot.Viewport{
		World:  p.Bounds(),
		Left:   plotMarginLeft,
		Top:    plotMarginTop,
		Width:  float64(screenWidth - plotMarginLeft - plotMarginRight),
		Height: float64(screenHeight - plotMarginTop - plotMarginBottom),
	}
}

func NewPlotScene(opts PlotSceneOptions) (*PlotScene, error) {
	if opts.Plot == nil {
		return nil, fmt.Errorf("plot is required")
	}
	p := opts.Plot
	vp := PlotViewport(p, opts.ScreenWidth, opts.ScreenHeight)

	root := objects.NewSortedZIndexObject("plot-root")
	children := []objects.GameObject{
		objects.NewRectObject("plot-background", objects.NewRectObjectOptions{
			W:     float32(opts.ScreenWidth),
			H:     float32(opts.ScreenHeight),
			Color: color.White,
		}),
		objects.NewAxesObject("plot-axes", p, vp),
		objects.NewLegendObject("plot-legend", p, vp),
	}
	for i, s := range p.Series {
		children = append(children, objects.NewSeriesObject(fmt.Sprintf("plot-series-%d", i), s, vp))
	}
	if p.Marker != nil {
		children = append(children, objects.NewMarkerObject("plot-marker", *p.Marker, vp))
	}

	s := &PlotScene{plot: p}
	if opts.Animate && len(p.Samples) > 0 {
		s.flight = flight.New(flight.NewFlightOptions{
			Samples:  p.Samples,
			Viewport: vp,
		})
		children = append(children, objects.NewProjectileObject("plot-projectile", s.flight))
	}

	for _, child := range children {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s to plot scene: %v", child.GetID(), err)
		}
	}
	s.BaseScene = NewBaseScene(root)
	return s, nil
}

// Replay restarts the projectile animation if there is one.
func (s *PlotScene) Replay() {
	if s.flight != nil {
		s.flight.Reset()
	}
}
