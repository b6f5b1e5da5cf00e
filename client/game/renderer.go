package game

import (
	"fmt"

	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/cbodonnell/oblique/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowRenderer shows a plot in a desktop window and blocks until the
// window is closed or escape is pressed.
type WindowRenderer struct {
	Debug bool
}

var _ session.Renderer = &WindowRenderer{}

func (r *WindowRenderer) Render(p *plot.Plot) error {
	g, err := NewGame(NewGameOptions{
		Debug: r.Debug,
		Plot:  p,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %v", err)
	}

	ebiten.SetWindowSize(DefaultScreenWidth, DefaultScreenHeight)
	ebiten.SetWindowTitle(p.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %v", err)
	}
	return nil
}
