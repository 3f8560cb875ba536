// internal/ui/button.go
package ui

import (
	"image"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchButton удерживает действие, пока кнопки касаются.
type TouchButton struct {
	Rect   image.Rectangle
	Label  string
	Action input.Action
}

// Контейнер для всех кнопок полосы управления.
type Controls struct {
	buttons []TouchButton
	touches []ebiten.TouchID
	held    input.ActionSet // то, что удерживается касанием, для подсветки
}

// NewControls раскладывает кнопки влево / огонь / вправо в полосе под полем
// размером fieldW x fieldH.
func NewControls(fieldW, fieldH int) *Controls {
	top := fieldH + 10
	bottom := fieldH + config.ControlBandHeight - 10
	w := fieldW / 3
	return &Controls{
		buttons: []TouchButton{
			{Rect: image.Rect(10, top, w-5, bottom), Label: "<", Action: input.MoveLeft},
			{Rect: image.Rect(w+5, top, 2*w-5, bottom), Label: "FIRE", Action: input.Fire},
			{Rect: image.Rect(2*w+5, top, fieldW-10, bottom), Label: ">", Action: input.MoveRight},
		},
	}
}

// Sample собирает набор действий с клавиатуры, касаний и мыши. Вызывается один
// раз в начале тика; симуляция получает копию.
func (c *Controls) Sample() input.ActionSet {
	var set input.ActionSet
	set.Set(input.MoveLeft, ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	set.Set(input.MoveRight, ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD))
	set.Set(input.Fire, ebiten.IsKeyPressed(ebiten.KeySpace))
	set.Set(input.TogglePause, ebiten.IsKeyPressed(ebiten.KeyP))

	c.held = 0
	c.touches = ebiten.AppendTouchIDs(c.touches[:0])
	for _, id := range c.touches {
		c.press(image.Pt(ebiten.TouchPosition(id)))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.press(image.Pt(ebiten.CursorPosition()))
	}
	return set | c.held
}

func (c *Controls) press(pt image.Point) {
	for _, b := range c.buttons {
		if pt.In(b.Rect) {
			c.held = c.held.With(b.Action)
		}
	}
}

// Draw рисует полосу кнопок; нажатые кнопки темнее.
func (c *Controls) Draw(s *Surface) {
	for _, b := range c.buttons {
		bg := config.ControlColor
		if c.held.Held(b.Action) {
			bg = render.DarkenColor(bg)
		}
		x, y := float64(b.Rect.Min.X), float64(b.Rect.Min.Y)
		w, h := float64(b.Rect.Dx()), float64(b.Rect.Dy())
		s.FillRect(x, y, w, h, bg)
		s.StrokeRect(x, y, w, h, 2, config.TextLightColor)
		s.CenteredText(b.Label, x, y, w, h, render.TextSmall, config.TextLightColor)
	}
}
