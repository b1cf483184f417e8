package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestSaveDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	card := Card{
		Background: color.RGBA{241, 241, 241, 255},
		Frame:      color.RGBA{255, 65, 65, 255},
		Text:       color.RGBA{95, 85, 255, 255},
		Overlay:    "Welcome to the Ryguy Color Scheme",
	}
	if err := card.Save(path); err != nil {
		t.Fatal(err)
	}

	img := decodePNG(t, path)
	want := image.Rect(0, 0, CanvasWidth, CanvasHeight)
	if img.Bounds() != want {
		t.Fatalf(`bounds = %v, want %v`, img.Bounds(), want)
	}
}

func TestSavePixelColours(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	card := Card{
		Background: color.RGBA{241, 241, 241, 255},
		Frame:      color.RGBA{255, 65, 65, 255},
		Text:       color.RGBA{95, 85, 255, 255},
		Overlay:    "hello",
	}
	if err := card.Save(path); err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, path)

	// Canvas centre is clear of both frame and text.
	if got := pixel(img, CanvasWidth/2, CanvasHeight/2); got != card.Background {
		t.Fatalf(`centre pixel = %v, want background %v`, got, card.Background)
	}
	// The 5-unit stroke centred on the inset rectangle fully covers
	// the column at x=frameInset on the left edge.
	if got := pixel(img, frameInset, CanvasHeight/2); got != card.Frame {
		t.Fatalf(`frame pixel = %v, want frame %v`, got, card.Frame)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	first := Card{
		Background: color.RGBA{10, 10, 10, 255},
		Frame:      color.RGBA{255, 65, 65, 255},
		Text:       color.RGBA{95, 85, 255, 255},
		Overlay:    "first",
	}
	if err := first.Save(path); err != nil {
		t.Fatal(err)
	}
	second := first
	second.Background = color.RGBA{200, 100, 50, 255}
	if err := second.Save(path); err != nil {
		t.Fatal(err)
	}

	img := decodePNG(t, path)
	if got := pixel(img, CanvasWidth/2, CanvasHeight/2); got != second.Background {
		t.Fatalf(`centre pixel = %v, want second background %v`, got, second.Background)
	}
}

func TestLoadFaceNeverFails(t *testing.T) {
	// Even without the primary family on disk the embedded fallback
	// face must come back usable.
	face, err := loadFace(fontSize)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if face == nil {
		t.Fatal("loadFace returned nil face")
	}
}
