package scenes

import (
	"image/color"

	"github.com/cbodonnell/oblique/client/objects"
)

var landedColor = color.NRGBA{R: 255, G: 200, B: 80, A: 255}

type MessageScene struct {
	*BaseScene
}

var _ Scene = &MessageScene{}

// NewErrorScene shows msg in white on an empty screen.
func NewErrorScene(msg string) (Scene, error) {
	return &MessageScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-error", msg, nil)),
	}, nil
}

// NewLandedScene tells the user the queried instant is after touchdown.
func NewLandedScene(msg string) (Scene, error) {
	return &MessageScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-landed", msg, landedColor)),
	}, nil
}
