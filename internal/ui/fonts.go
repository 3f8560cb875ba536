// internal/ui/fonts.go
package ui

import (
	"fmt"

	"go-space-shooter/pkg/render"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts хранит начертания для обоих размеров текста.
type Fonts struct {
	Small font.Face
	Large font.Face
}

// LoadFonts разбирает встроенный шрифт Go Regular в размерах HUD и оверлеев.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	small, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create small face: %w", err)
	}
	large, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create large face: %w", err)
	}
	return &Fonts{Small: small, Large: large}, nil
}

func (f *Fonts) Face(size render.TextSize) font.Face {
	if size == render.TextLarge {
		return f.Large
	}
	return f.Small
}
