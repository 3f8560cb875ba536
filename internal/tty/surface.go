// Package tty рисует симуляцию в терминале через tcell.
package tty

import (
	"image/color"
	"math"

	"go-space-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
)

var _ render.Surface = (*Surface)(nil)

// Surface переводит координаты поля в ячейки терминала. Поле растягивается на
// весь экран; последний ряд отдан под строку статуса.
type Surface struct {
	screen         tcell.Screen
	fieldW, fieldH float64
	cols, rows     int
}

func NewSurface(screen tcell.Screen, fieldW, fieldH float64) *Surface {
	s := &Surface{screen: screen, fieldW: fieldW, fieldH: fieldH}
	s.Resize()
	return s
}

// Resize перечитывает размер экрана; вызывается на EventResize.
func (s *Surface) Resize() {
	w, h := s.screen.Size()
	s.cols, s.rows = max(w, 1), max(h-1, 1)
}

// Cell возвращает ячейку терминала, в которую попадает точка поля (x, y).
func (s *Surface) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x * float64(s.cols) / s.fieldW))
	row = int(math.Floor(y * float64(s.rows) / s.fieldH))
	return col, row
}

func (s *Surface) Clear(c color.RGBA) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(c)))
}

// FillRect закрашивает все ячейки, которые задевает прямоугольник; даже узкий
// снаряд занимает хотя бы одну ячейку.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if c.A == 0 {
		return
	}
	c0, r0 := s.Cell(x, y)
	c1, r1 := s.Cell(x+w, y+h)
	c1, r1 = max(c1, c0+1), max(r1, r0+1)

	style := tcell.StyleDefault.Background(toTcell(c))
	for row := max(r0, 0); row < min(r1, s.rows); row++ {
		for col := max(c0, 0); col < min(c1, s.cols); col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// Text пишет строку в ряд, где лежит базовая линия y. Размер шрифта в
// терминале не различается.
func (s *Surface) Text(str string, x, y float64, _ render.TextSize, c color.RGBA) {
	col, row := s.Cell(x, y-1)
	if row < 0 || row >= s.rows {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(c)).Background(tcell.ColorBlack)
	for i, r := range []rune(str) {
		if col+i >= 0 && col+i < s.cols {
			s.screen.SetContent(col+i, row, r, nil, style)
		}
	}
}

// Status пишет строку подсказки в последний ряд экрана.
func (s *Surface) Status(str string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	runes := []rune(str)
	for col := 0; col < s.cols; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		s.screen.SetContent(col, s.rows, r, nil, style)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
