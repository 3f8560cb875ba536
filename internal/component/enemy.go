// internal/component/enemy.go
package component

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

// Enemy представляет вражескую сущность, патрулирующую поле.
type Enemy struct {
	Rect
	Speed float64
	Dir   float64 // +1 вправо, -1 влево
}

func NewEnemy(x, y, speed float64, t config.Tuning) Enemy {
	return Enemy{
		Rect:  Rect{X: x, Y: y, W: t.Enemy.Width, H: t.Enemy.Height},
		Speed: speed,
		Dir:   1,
	}
}

// Update двигает врага по горизонтали. Коснувшись края поля, враг
// разворачивается и спускается на rowStep.
func (e *Enemy) Update(fieldWidth, rowStep float64) {
	e.X += e.Speed * e.Dir
	if e.X <= 0 || e.Right() >= fieldWidth {
		e.Dir = -e.Dir
		e.Y += rowStep
	}
}

func (e Enemy) Draw(s render.Surface) {
	s.FillRect(e.X, e.Y, e.W, e.H, config.EnemyBodyColor)
	s.FillRect(e.X+6, e.Y+4, e.W-12, e.H-8, config.EnemyCoreColor)
}
