package session

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/cbodonnell/oblique/pkg/query"
	"github.com/cbodonnell/oblique/pkg/report"
)

const (
	AnglePrompt = "Enter launch angle (degrees): "
	SpeedPrompt = "Enter initial speed (m/s): "
	TimePrompt  = "You want to know the speed at what second? "
)

// Renderer draws a finished trajectory plot.
type Renderer interface {
	Render(p *plot.Plot) error
}

// Session runs the interactive calculator once: two launch prompts, the
// summary, one query prompt, the state report and finally the plot.
type Session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	engine   kinematic.Engine
	steps    int
	renderer Renderer
}

type NewSessionOptions struct {
	In     io.Reader
	Out    io.Writer
	Engine kinematic.Engine
	// Steps is the number of trajectory sampling intervals.
	Steps int
	// Renderer may be nil, in which case no plot is drawn.
	Renderer Renderer
}

func NewSession(opts NewSessionOptions) *Session {
	steps := opts.Steps
	if steps <= 0 {
		steps = kinematic.DefaultSteps
	}
	return &Session{
		scanner:  bufio.NewScanner(opts.In),
		out:      opts.Out,
		engine:   opts.Engine,
		steps:    steps,
		renderer: opts.Renderer,
	}
}

func (s *Session) ask(prompt string) (float64, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %v", err)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read answer: %v", err)
		}
		return 0, io.ErrUnexpectedEOF
	}
	return query.ParseNumber(s.scanner.Text())
}

// Launch asks for the launch parameters and prints the launch summary.
func (s *Session) Launch() (*query.Launch, error) {
	angle, err := s.ask(AnglePrompt)
	if err != nil {
		return nil, err
	}
	speed, err := s.ask(SpeedPrompt)
	if err != nil {
		return nil, err
	}

	launch, err := query.NewLaunch(s.engine, kinematic.LaunchParameters{AngleDegrees: angle, InitialSpeed: speed})
	if err != nil {
		return nil, err
	}
	log.Debug("Launch at %.2f degrees and %.2f m/s: %+v", angle, speed, launch.Summary)

	if err := report.WriteSummary(s.out, launch.Summary); err != nil {
		return nil, fmt.Errorf("failed to write summary: %v", err)
	}
	return launch, nil
}

// Query asks for a time and reports the state of the launch at that time.
// A landed outcome is reported and returns a nil state.
func (s *Session) Query(launch *query.Launch) (*kinematic.State, error) {
	t, err := s.ask("\n" + TimePrompt)
	if err != nil {
		return nil, err
	}

	outcome, state, err := launch.At(t)
	if err != nil {
		return nil, err
	}
	if outcome == query.OutcomeLanded {
		log.Debug("Query time %.2f is past flight time %.2f", t, launch.Summary.FlightTime)
		if err := report.WriteLanded(s.out); err != nil {
			return nil, fmt.Errorf("failed to write landed notice: %v", err)
		}
		return nil, nil
	}

	if err := report.WriteState(s.out, *state); err != nil {
		return nil, fmt.Errorf("failed to write state: %v", err)
	}
	return state, nil
}

// Plot renders the trajectory with the queried state highlighted.
func (s *Session) Plot(launch *query.Launch, state *kinematic.State) error {
	if s.renderer == nil {
		return nil
	}
	p := plot.NewTrajectoryPlot(launch.Trajectory(s.steps), state)
	if err := s.renderer.Render(p); err != nil {
		return fmt.Errorf("failed to render plot: %v", err)
	}
	return nil
}

// Run executes the full interactive flow.
func (s *Session) Run() error {
	if _, err := fmt.Fprintln(s.out, report.Banner); err != nil {
		return fmt.Errorf("failed to write banner: %v", err)
	}

	launch, err := s.Launch()
	if err != nil {
		return err
	}

	state, err := s.Query(launch)
	if err != nil {
		return err
	}
	if state == nil {
		return nil
	}

	return s.Plot(launch, state)
}
