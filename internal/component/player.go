// internal/component/player.go
package component

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/render"
)

// Player описывает корабль игрока. Двигается только по горизонтали.
type Player struct {
	Rect
	Speed float64
}

// NewPlayer ставит корабль по центру нижней части поля.
func NewPlayer(t config.Tuning) Player {
	return Player{
		Rect: Rect{
			X: t.FieldWidth/2 - t.Player.Width/2,
			Y: t.PlayerY(),
			W: t.Player.Width,
			H: t.Player.Height,
		},
		Speed: t.Player.Speed,
	}
}

// Move сдвигает корабль на dir*Speed и удерживает его в границах поля.
func (p *Player) Move(dir int, fieldWidth float64) {
	if dir < -1 || dir > 1 {
		panic(fmt.Sprintf("component: invalid move direction %d", dir))
	}
	p.X = utils.Clamp(p.X+float64(dir)*p.Speed, 0, fieldWidth-p.W)
}

// Muzzle возвращает левый верхний угол снаряда ширины projW, вылетающего из носа корабля.
func (p Player) Muzzle(projW float64) (x, y float64) {
	return p.X + p.W/2 - projW/2, p.Y
}

// Draw рисует корпус и кабину.
func (p Player) Draw(s render.Surface) {
	s.FillRect(p.X, p.Y, p.W, p.H, config.PlayerHullColor)
	s.FillRect(p.X+8, p.Y-10, p.W-16, 10, config.PlayerCabinColor)
}
