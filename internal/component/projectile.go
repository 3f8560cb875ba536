// internal/component/projectile.go
package component

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

// Projectile представляет летящий вверх снаряд.
type Projectile struct {
	Rect
	Speed float64
}

func NewProjectile(x, y float64, t config.Tuning) Projectile {
	return Projectile{
		Rect:  Rect{X: x, Y: y, W: t.Projectile.Width, H: t.Projectile.Height},
		Speed: t.Projectile.Speed,
	}
}

func (p *Projectile) Update() {
	p.Y -= p.Speed
}

// Alive: снаряд ещё не ушёл целиком за верхний край.
func (p Projectile) Alive() bool {
	return p.Bottom() > 0
}

func (p Projectile) Draw(s render.Surface) {
	s.FillRect(p.X, p.Y, p.W, p.H, config.ProjectileColor)
}
