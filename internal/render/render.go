// Package render draws the colour scheme card and writes it to disk
// as a PNG.
package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas geometry. Nothing in the program reconfigures these at
// runtime.
const (
	CanvasWidth  = 800
	CanvasHeight = 600

	frameInset  = 8
	frameWidth  = CanvasWidth - 2*frameInset
	frameHeight = CanvasHeight - 2*frameInset
	strokeWidth = 5

	textX    = 20
	textY    = 20
	fontSize = 24
)

// Card is a single render: three resolved colours plus the overlay
// string.
type Card struct {
	Background color.RGBA
	Frame      color.RGBA
	Text       color.RGBA
	Overlay    string
}

// Save renders the card and writes it as a PNG to path, replacing
// any existing file there. The drawing context and face are scoped to
// this call; encode and write failures propagate to the caller.
func (c Card) Save(path string) error {
	dc := gg.NewContext(CanvasWidth, CanvasHeight)

	dc.SetColor(c.Background)
	dc.Clear()

	dc.SetColor(c.Frame)
	dc.SetLineWidth(strokeWidth)
	dc.DrawRectangle(frameInset, frameInset, frameWidth, frameHeight)
	dc.Stroke()

	face, err := loadFace(fontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(c.Text)
	// Top-left anchor; long text overflows the canvas silently.
	dc.DrawStringAnchored(c.Overlay, textX, textY, 0, 1)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
