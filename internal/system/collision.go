// internal/system/collision.go
package system

import "go-space-shooter/internal/component"

// HitResult: итог одного прохода разрешения попаданий.
type HitResult struct {
	Projectiles []component.Projectile // уцелевшие снаряды, порядок сохранён
	Enemies     []component.Enemy      // уцелевшие враги, порядок сохранён
	Kills       []component.Enemy      // сбитые враги
}

// ResolveHits сопоставляет снаряды и врагов попарно по AABB.
//
// Входные срезы не изменяются: сначала проход только на чтение помечает пары,
// затем строятся новые срезы без помеченных сущностей. Каждый снаряд забирает
// не больше одного врага (первого непомеченного, с которым пересекается),
// каждый враг засчитывается не больше одного раза.
func ResolveHits(projectiles []component.Projectile, enemies []component.Enemy) HitResult {
	deadProjectiles := make([]bool, len(projectiles))
	deadEnemies := make([]bool, len(enemies))
	kills := 0

	for pi, p := range projectiles {
		for ei, e := range enemies {
			if deadEnemies[ei] {
				continue
			}
			if p.Overlaps(e.Rect) {
				deadProjectiles[pi] = true
				deadEnemies[ei] = true
				kills++
				break
			}
		}
	}

	res := HitResult{
		Projectiles: make([]component.Projectile, 0, len(projectiles)-kills),
		Enemies:     make([]component.Enemy, 0, len(enemies)-kills),
		Kills:       make([]component.Enemy, 0, kills),
	}
	for i, p := range projectiles {
		if !deadProjectiles[i] {
			res.Projectiles = append(res.Projectiles, p)
		}
	}
	for i, e := range enemies {
		if deadEnemies[i] {
			res.Kills = append(res.Kills, e)
		} else {
			res.Enemies = append(res.Enemies, e)
		}
	}
	return res
}

// BreachesDefenseLine сообщает, дошёл ли нижний край врага до ряда игрока
// при пересечении с кораблём по горизонтали.
func BreachesDefenseLine(e component.Enemy, p component.Player) bool {
	return e.Bottom() >= p.Y && e.OverlapsX(p.Rect)
}

// AnyBreach сообщает, прорвал ли хотя бы один враг линию обороны.
func AnyBreach(enemies []component.Enemy, p component.Player) bool {
	for _, e := range enemies {
		if BreachesDefenseLine(e, p) {
			return true
		}
	}
	return false
}

// DropDead оставляет только снаряды, ещё находящиеся на поле.
func DropDead(projectiles []component.Projectile) []component.Projectile {
	alive := projectiles[:0]
	for _, p := range projectiles {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}
