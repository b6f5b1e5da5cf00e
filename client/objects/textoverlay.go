package objects

import (
	"image/color"

	"github.com/cbodonnell/oblique/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// TextOverlayObject draws a message centered on the screen.
type TextOverlayObject struct {
	*BaseObject

	text string
	clr  color.Color
}

func NewTextOverlayObject(id string, text string, clr color.Color) *TextOverlayObject {
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 100}),
		text:       text,
		clr:        clr,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	f := fonts.TTFLargeFont
	bounds := text.BoundString(f, o.text)
	x := screen.Bounds().Dx()/2 - bounds.Dx()/2
	y := screen.Bounds().Dy()/2 + bounds.Dy()/2
	text.Draw(screen, o.text, f, x, y, o.clr)
}
