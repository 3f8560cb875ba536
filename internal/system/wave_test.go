package system

import (
	"math"
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/event/mocks"

	"go.uber.org/mock/gomock"
)

func TestWaveSpawn_Layout(t *testing.T) {
	ws := NewWaveSystem(config.Default(), event.NewDispatcher(), nil)

	tests := []struct {
		level int
		count int
		speed float64
	}{
		{1, 24, 1.2},
		{2, 30, 1.4},
		{5, 48, 2.0},
	}
	for _, tc := range tests {
		enemies := ws.Spawn(tc.level)
		if len(enemies) != tc.count {
			t.Errorf("level %d: expected %d enemies, got %d", tc.level, tc.count, len(enemies))
		}
		for _, e := range enemies {
			if math.Abs(e.Speed-tc.speed) > 1e-9 {
				t.Fatalf("level %d: expected speed %v, got %v", tc.level, tc.speed, e.Speed)
			}
			if e.Dir != 1 {
				t.Fatalf("level %d: enemies must start moving right", tc.level)
			}
		}
	}
}

func TestWaveSpawn_RowMajorGrid(t *testing.T) {
	ws := NewWaveSystem(config.Default(), event.NewDispatcher(), nil)
	enemies := ws.Spawn(1)

	first, last := enemies[0], enemies[len(enemies)-1]
	if first.X != 40 || first.Y != 40 {
		t.Errorf("Expected first enemy at (40, 40), got (%v, %v)", first.X, first.Y)
	}
	if enemies[1].X != 100 || enemies[1].Y != 40 {
		t.Errorf("Expected second enemy at (100, 40), got (%v, %v)", enemies[1].X, enemies[1].Y)
	}
	if enemies[6].X != 40 || enemies[6].Y != 80 {
		t.Errorf("Expected seventh enemy to start row 2 at (40, 80), got (%v, %v)", enemies[6].X, enemies[6].Y)
	}
	if last.X != 340 || last.Y != 160 {
		t.Errorf("Expected last enemy at (340, 160), got (%v, %v)", last.X, last.Y)
	}
}

func TestWaveSpawn_InvalidLevelPanics(t *testing.T) {
	ws := NewWaveSystem(config.Default(), event.NewDispatcher(), nil)
	for _, level := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for level %d", level)
				}
			}()
			ws.Spawn(level)
		}()
	}
}

func TestWaveAdvance_NotifiesOnceThenSpawns(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockListener(ctrl)
	d := event.NewDispatcher()
	d.Subscribe(event.LevelComplete, listener)
	ws := NewWaveSystem(config.Default(), d, nil)

	listener.EXPECT().OnEvent(event.Event{
		Type: event.LevelComplete,
		Data: event.LevelCompleteData{Level: 1, Coins: 100, Message: "Level 1 complete! +100 coins"},
	}).Times(1)

	session := component.Session{Score: 2400, Level: 1}
	next := ws.Advance(&session)

	if session.Level != 2 || session.Coins != 100 {
		t.Errorf("Expected level 2 and 100 coins, got level %d coins %d", session.Level, session.Coins)
	}
	if session.Score != 2400 {
		t.Errorf("Advance must not touch the score, got %d", session.Score)
	}
	if len(next) != 30 {
		t.Errorf("Expected 30 enemies in the level 2 wave, got %d", len(next))
	}
}
