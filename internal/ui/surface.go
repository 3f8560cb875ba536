// internal/ui/surface.go
package ui

import (
	"image/color"

	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что Surface соответствует интерфейсу render.Surface
var _ render.Surface = (*Surface)(nil)

// Surface выполняет команды рисования симуляции на ebiten.Image.
type Surface struct {
	dst   *ebiten.Image
	fonts *Fonts
}

func NewSurface(fonts *Fonts) *Surface {
	return &Surface{fonts: fonts}
}

// Target задаёт изображение для текущего кадра.
func (s *Surface) Target(dst *ebiten.Image) *Surface {
	s.dst = dst
	return s
}

func (s *Surface) Clear(c color.RGBA) {
	s.dst.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) Text(str string, x, y float64, size render.TextSize, c color.RGBA) {
	text.Draw(s.dst, str, s.fonts.Face(size), int(x), int(y), c)
}

// CenteredText рисует строку по центру прямоугольника.
func (s *Surface) CenteredText(str string, x, y, w, h float64, size render.TextSize, c color.RGBA) {
	face := s.fonts.Face(size)
	bounds := text.BoundString(face, str)
	tx := x + (w-float64(bounds.Dx()))/2
	ty := y + (h+float64(face.Metrics().Ascent.Round()-face.Metrics().Descent.Round()))/2
	text.Draw(s.dst, str, face, int(tx), int(ty), c)
}

// StrokeRect рисует рамку прямоугольника.
func (s *Surface) StrokeRect(x, y, w, h float64, width float32, c color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), width, c, false)
}

// Face отдаёт начертание для размера текста, чтобы измерять раскладку.
func (s *Surface) Face(size render.TextSize) font.Face {
	return s.fonts.Face(size)
}
