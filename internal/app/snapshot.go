package app

import (
	"fmt"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/render"
)

// OverlayKind определяет, что показывать поверх поля.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayPaused
	OverlayGameOver
)

// HUD содержит значения для верхнего левого угла экрана.
type HUD struct {
	Score, Level, Coins int
}

type Overlay struct {
	Kind       OverlayKind
	FinalScore int // только для OverlayGameOver
}

// Snapshot описывает состояние симуляции после тика для слоя отображения.
type Snapshot struct {
	Phase       component.Phase
	Player      component.Player
	Projectiles []component.Projectile
	Enemies     []component.Enemy
	HUD         HUD
	Overlay     Overlay
}

// Snapshot возвращает копию всего, что нужно слою отображения.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       g.phase,
		Player:      g.player,
		Projectiles: g.Projectiles(),
		Enemies:     g.Enemies(),
		HUD: HUD{
			Score: g.session.Score,
			Level: g.session.Level,
			Coins: g.session.Coins,
		},
	}
	switch g.phase {
	case component.Paused:
		s.Overlay = Overlay{Kind: OverlayPaused}
	case component.GameOver:
		s.Overlay = Overlay{Kind: OverlayGameOver, FinalScore: g.session.Score}
	}
	return s
}

// Draw отдаёт поверхности команды рисования для текущего состояния. До Start
// рисуется только фон.
func (g *Game) Draw(s render.Surface) {
	g.Snapshot().Draw(s, g.Tuning)
}

// Draw рисует снимок: сущности, HUD и оверлей.
func (snap Snapshot) Draw(s render.Surface, t config.Tuning) {
	s.Clear(config.BackgroundColor)
	if snap.Phase == component.NotStarted {
		return
	}

	snap.Player.Draw(s)
	for _, p := range snap.Projectiles {
		p.Draw(s)
	}
	for _, e := range snap.Enemies {
		e.Draw(s)
	}

	lines := []string{
		fmt.Sprintf("Score: %d", snap.HUD.Score),
		fmt.Sprintf("Level: %d", snap.HUD.Level),
		fmt.Sprintf("Coins: %d", snap.HUD.Coins),
	}
	for i, line := range lines {
		s.Text(line, config.HUDTextX, float64((i+1)*config.HUDLineHeight), render.TextSmall, config.TextLightColor)
	}

	cx, cy := t.FieldWidth/2, t.FieldHeight/2
	switch snap.Overlay.Kind {
	case OverlayPaused:
		s.Text("PAUSED", cx-40, cy, render.TextLarge, config.TextLightColor)
	case OverlayGameOver:
		s.Text("GAME OVER", cx-60, cy, render.TextLarge, config.TextLightColor)
		s.Text(fmt.Sprintf("Final Score: %d", snap.Overlay.FinalScore), cx-60, cy+30, render.TextSmall, config.TextLightColor)
	}
}
