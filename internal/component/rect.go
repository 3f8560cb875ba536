// internal/component/rect.go
package component

// Rect: ось-выровненный прямоугольник (AABB) в координатах поля.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps сообщает, пересекаются ли r и o по площади. Касание краями не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// OverlapsX проверяет пересечение только по горизонтали.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X
}
