// pkg/render/surface.go
package render

import "image/color"

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// TextSize задаёт размер шрифта для текстовых команд.
type TextSize int

const (
	TextSmall TextSize = iota // HUD, 16px
	TextLarge                 // оверлеи, 24px
)

// Surface: непрозрачная поверхность рисования. Симуляция отдаёт ей только
// команды фигур и текста в координатах игрового поля.
type Surface interface {
	// Clear заливает всю поверхность цветом фона.
	Clear(c color.RGBA)
	// FillRect рисует залитый прямоугольник.
	FillRect(x, y, w, h float64, c color.RGBA)
	// Text рисует строку; y задаёт базовую линию текста.
	Text(s string, x, y float64, size TextSize, c color.RGBA)
}
