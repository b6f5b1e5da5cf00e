package scenes

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/oblique/client/fonts"
	"github.com/cbodonnell/oblique/client/objects"
	"github.com/cbodonnell/oblique/client/ui"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/report"
	"github.com/cbodonnell/oblique/pkg/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// FormScene collects the launch angle, initial speed and query time.
type FormScene struct {
	*BaseScene

	onSubmit  func(angle, speed, t string) error
	ui        *ebitenui.UI
	angle     string
	speed     string
	t         string
	submitErr string
}

type FormSceneOptions struct {
	// OnSubmit is called with the raw field values when the launch button is pressed.
	OnSubmit func(angle, speed, t string) error
	// Angle, Speed and T prefill the fields, e.g. when returning from a plot.
	Angle string
	Speed string
	T     string
}

var _ Scene = &FormScene{}

func NewFormScene(opts FormSceneOptions) (*FormScene, error) {
	return &FormScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("form-root", nil)),
		onSubmit:  opts.OnSubmit,
		angle:     opts.Angle,
		speed:     opts.Speed,
		t:         opts.T,
	}, nil
}

func (s *FormScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func newFieldLabel(label string, face font.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(strings.TrimSpace(label), face, color.NRGBA{R: 230, G: 230, B: 230, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionStart,
			}),
		),
	)
}

func newFieldInput(placeholder, value string, face font.Face, changed func(string)) *widget.TextInput {
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("decimal"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(face, 2),
		),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			changed(args.InputText)
		}),
	)
	input.SetText(value)
	return input
}

func (s *FormScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.MPlusNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    60,
				Left:   160,
				Right:  160,
				Bottom: 60,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(strings.Trim(report.Banner, "= "), fonts.TTFLargeFont, color.NRGBA{R: 254, G: 255, B: 255, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	angleInput := newFieldInput("e.g. 45", s.angle, fontFace, func(v string) { s.angle = v })
	speedInput := newFieldInput("e.g. 20", s.speed, fontFace, func(v string) { s.speed = v })
	timeInput := newFieldInput("e.g. 1", s.t, fontFace, func(v string) { s.t = v })

	rootContainer.AddChild(newFieldLabel(session.AnglePrompt, fontFace))
	rootContainer.AddChild(angleInput)
	rootContainer.AddChild(newFieldLabel(session.SpeedPrompt, fontFace))
	rootContainer.AddChild(speedInput)
	rootContainer.AddChild(newFieldLabel(session.TimePrompt, fontFace))
	rootContainer.AddChild(timeInput)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Launch", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(button)

	if s.submitErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.submitErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.submitErr = ""
	}

	// auto focus the first empty field
	switch {
	case s.angle == "":
		angleInput.Focus(true)
	case s.speed == "":
		speedInput.Focus(true)
	default:
		timeInput.Focus(true)
	}

	submitHandler := func(args interface{}) {
		angle, speed, t := angleInput.GetText(), speedInput.GetText(), timeInput.GetText()
		if angle == "" || speed == "" || t == "" {
			return
		}
		if err := s.onSubmit(angle, speed, t); err != nil {
			log.Debug("Launch rejected: %v", err)
			if actionableErr, ok := err.(*ui.ActionableError); ok {
				s.submitErr = actionableErr.Message
			} else {
				s.submitErr = "Failed to compute the trajectory. Please try again."
			}
			s.renderUI()
		}
	}
	angleInput.SubmitEvent.AddHandler(submitHandler)
	speedInput.SubmitEvent.AddHandler(submitHandler)
	timeInput.SubmitEvent.AddHandler(submitHandler)
	button.ClickedEvent.AddHandler(submitHandler)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *FormScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *FormScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
