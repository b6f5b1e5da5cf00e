package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/oblique/client/input"
	"github.com/cbodonnell/oblique/client/scenes"
	"github.com/cbodonnell/oblique/client/ui"
	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/cbodonnell/oblique/pkg/query"
	"github.com/cbodonnell/oblique/pkg/report"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// engine computes every launch submitted through the form.
	engine kinematic.Engine
	// steps is the number of trajectory intervals to sample.
	steps int
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// form holds the last submitted field values so the form can be refilled.
	form formValues
}

type formValues struct {
	angle, speed, t string
}

type GameMode int

const (
	GameModeForm GameMode = iota
	GameModePlot
	GameModeLanded
	GameModeError
	// GameModeView shows a single plot and terminates when dismissed.
	GameModeView
)

func (m GameMode) String() string {
	switch m {
	case GameModeForm:
		return "Form"
	case GameModePlot:
		return "Plot"
	case GameModeLanded:
		return "Landed"
	case GameModeError:
		return "Error"
	case GameModeView:
		return "View"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug  bool
	Engine kinematic.Engine
	// Steps is the number of trajectory intervals to sample. Defaults to kinematic.DefaultSteps.
	Steps int
	// Plot, when set, is shown on its own instead of the input form.
	Plot *plot.Plot
}

func NewGame(opts NewGameOptions) (*Game, error) {
	engine := opts.Engine
	if engine.Gravity() <= 0 {
		engine = kinematic.NewStandardEngine()
	}
	steps := opts.Steps
	if steps <= 0 {
		steps = kinematic.DefaultSteps
	}
	g := &Game{
		debug:  opts.Debug,
		engine: engine,
		steps:  steps,
	}

	if opts.Plot != nil {
		if err := g.loadPlot(opts.Plot, GameModeView); err != nil {
			return nil, fmt.Errorf("failed to load plot scene: %v", err)
		}
		return g, nil
	}

	if err := g.loadForm(); err != nil {
		return nil, fmt.Errorf("failed to load form scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadForm() error {
	form, err := scenes.NewFormScene(scenes.FormSceneOptions{
		OnSubmit: g.submit,
		Angle:    g.form.angle,
		Speed:    g.form.speed,
		T:        g.form.t,
	})
	if err != nil {
		return fmt.Errorf("failed to create form scene: %v", err)
	}
	if err := g.SetScene(form); err != nil {
		return fmt.Errorf("failed to set form scene: %v", err)
	}
	g.mode = GameModeForm
	return nil
}

// submit is the form handler. Actionable errors go back to the form; any
// other failure switches to the error scene.
func (g *Game) submit(angleText, speedText, tText string) error {
	err := g.evaluate(angleText, speedText, tText)
	var actionableErr *ui.ActionableError
	if err == nil || errors.As(err, &actionableErr) {
		return err
	}
	log.Error("Failed to show launch: %v", err)
	if err := g.loadError("Failed to compute the trajectory"); err != nil {
		return fmt.Errorf("failed to load error scene: %v", err)
	}
	return nil
}

// evaluate computes the launch described by the form fields and switches to
// the plot, or to the landed notice when t is after touchdown.
func (g *Game) evaluate(angleText, speedText, tText string) error {
	angle, err := query.ParseNumber(angleText)
	if err != nil {
		return ui.Actionable("Angle", err)
	}
	speed, err := query.ParseNumber(speedText)
	if err != nil {
		return ui.Actionable("Speed", err)
	}
	t, err := query.ParseNumber(tText)
	if err != nil {
		return ui.Actionable("Time", err)
	}
	g.form = formValues{angle: angleText, speed: speedText, t: tText}

	launch, err := query.NewLaunch(g.engine, kinematic.LaunchParameters{
		AngleDegrees: angle,
		InitialSpeed: speed,
	})
	if err != nil {
		return ui.Actionable("Launch", err)
	}
	log.Debug("Launch summary: %s", report.FormatSummary(launch.Summary))

	outcome, state, err := launch.At(t)
	if err != nil {
		return ui.Actionable("Time", err)
	}
	if outcome == query.OutcomeLanded {
		return g.loadLanded()
	}
	log.Debug("State: %s", report.FormatState(*state))

	p := plot.NewTrajectoryPlot(launch.Trajectory(g.steps), state)
	return g.loadPlot(p, GameModePlot)
}

func (g *Game) loadPlot(p *plot.Plot, mode GameMode) error {
	plotScene, err := scenes.NewPlotScene(scenes.PlotSceneOptions{
		Plot:         p,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		Animate:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create plot scene: %v", err)
	}
	if err := g.SetScene(plotScene); err != nil {
		return fmt.Errorf("failed to set plot scene: %v", err)
	}
	g.mode = mode
	return nil
}

func (g *Game) loadLanded() error {
	landed, err := scenes.NewLandedScene(report.LandedMessage)
	if err != nil {
		return fmt.Errorf("failed to create landed scene: %v", err)
	}
	if err := g.SetScene(landed); err != nil {
		return fmt.Errorf("failed to set landed scene: %v", err)
	}
	g.mode = GameModeLanded
	return nil
}

func (g *Game) loadError(msg string) error {
	errorScene, err := scenes.NewErrorScene(msg)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = GameModeError
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return err
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModeForm:
		if input.IsNegativeJustPressed() {
			return ebiten.Termination
		}
	case GameModePlot:
		if input.IsNegativeJustPressed() {
			if err := g.loadForm(); err != nil {
				return fmt.Errorf("failed to load form scene: %v", err)
			}
			break
		}
		g.handleReplay()
	case GameModeLanded, GameModeError:
		if input.IsPositiveJustPressed() || input.IsNegativeJustPressed() {
			if err := g.loadForm(); err != nil {
				return fmt.Errorf("failed to load form scene: %v", err)
			}
		}
	case GameModeView:
		if input.IsNegativeJustPressed() {
			return ebiten.Termination
		}
		g.handleReplay()
	}

	return nil
}

func (g *Game) handleReplay() {
	if !input.IsReplayJustPressed() {
		return
	}
	if plotScene, ok := g.scene.(*scenes.PlotScene); ok {
		plotScene.Replay()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   g: %0.2f m/s^2", g.engine.Gravity()))
}

const (
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
