package system

import (
	"testing"

	"go-space-shooter/internal/component"

	"pgregory.net/rapid"
)

func genProjectile() *rapid.Generator[component.Projectile] {
	return rapid.Custom(func(t *rapid.T) component.Projectile {
		return projectileAt(
			rapid.Float64Range(0, 200).Draw(t, "px"),
			rapid.Float64Range(0, 200).Draw(t, "py"),
		)
	})
}

func genEnemy() *rapid.Generator[component.Enemy] {
	return rapid.Custom(func(t *rapid.T) component.Enemy {
		return enemyAt(
			rapid.Float64Range(0, 200).Draw(t, "ex"),
			rapid.Float64Range(0, 200).Draw(t, "ey"),
		)
	})
}

// Каждое попадание убирает ровно один снаряд и одного врага, а среди
// уцелевших не остаётся пересекающихся пар.
func TestResolveHits_Accounting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		projectiles := rapid.SliceOfN(genProjectile(), 0, 16).Draw(t, "projectiles")
		enemies := rapid.SliceOfN(genEnemy(), 0, 16).Draw(t, "enemies")

		res := ResolveHits(projectiles, enemies)
		kills := len(res.Kills)

		if len(res.Projectiles)+kills != len(projectiles) {
			t.Fatalf("projectiles: %d survivors + %d kills != %d", len(res.Projectiles), kills, len(projectiles))
		}
		if len(res.Enemies)+kills != len(enemies) {
			t.Fatalf("enemies: %d survivors + %d kills != %d", len(res.Enemies), kills, len(enemies))
		}
		for _, p := range res.Projectiles {
			for _, e := range res.Enemies {
				if p.Overlaps(e.Rect) {
					t.Fatalf("surviving projectile %+v still overlaps surviving enemy %+v", p.Rect, e.Rect)
				}
			}
		}
	})
}
