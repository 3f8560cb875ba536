package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}

func TestFade(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	if got := Fade(white, 255); got != white {
		t.Errorf("Fade(255) must keep the color, got %v", got)
	}
	if got := Fade(white, 0); got != (color.RGBA{}) {
		t.Errorf("Fade(0) must be transparent, got %v", got)
	}
	got := Fade(color.RGBA{20, 20, 30, 220}, 128)
	if got.R > got.A || got.G > got.A || got.B > got.A {
		t.Errorf("Fade must stay premultiplied, got %v", got)
	}
}
