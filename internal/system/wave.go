// internal/system/wave.go
package system

import (
	"fmt"
	"log/slog"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
)

// WaveSystem строит сетки врагов и продвигает уровни.
type WaveSystem struct {
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewWaveSystem(t config.Tuning, eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &WaveSystem{
		tuning:          t,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Rows возвращает число рядов в волне уровня level.
func (s *WaveSystem) Rows(level int) int {
	return s.tuning.Wave.BaseRows + level
}

// Speed возвращает горизонтальную скорость врагов уровня level.
func (s *WaveSystem) Speed(level int) float64 {
	return s.tuning.Wave.BaseSpeed + float64(level)*s.tuning.Wave.SpeedIncrement
}

// Spawn раскладывает сетку врагов для уровня level построчно.
// Уровень начинается с 1; меньшее значение считается ошибкой программиста.
func (s *WaveSystem) Spawn(level int) []component.Enemy {
	if level < 1 {
		panic(fmt.Sprintf("system: wave level must be >= 1, got %d", level))
	}
	w := s.tuning.Wave
	rows := s.Rows(level)
	speed := s.Speed(level)

	enemies := make([]component.Enemy, 0, rows*w.Columns)
	for r := 0; r < rows; r++ {
		for c := 0; c < w.Columns; c++ {
			x := w.OriginX + float64(c)*w.SpacingX
			y := w.OriginY + float64(r)*w.SpacingY
			enemies = append(enemies, component.NewEnemy(x, y, speed, s.tuning))
		}
	}
	return enemies
}

// Advance засчитывает зачищенную волну: уровень +1, бонус монет, ровно одно
// событие LevelComplete, и только после него строит новую волну.
func (s *WaveSystem) Advance(session *component.Session) []component.Enemy {
	completed := session.Level
	session.Level++
	session.Coins += s.tuning.WaveBonus

	s.logger.Info("level complete",
		"level", completed,
		"coins", session.Coins,
		"score", session.Score,
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.LevelComplete,
		Data: event.LevelCompleteData{
			Level:   completed,
			Coins:   s.tuning.WaveBonus,
			Message: fmt.Sprintf("Level %d complete! +%d coins", completed, s.tuning.WaveBonus),
		},
	})

	return s.Spawn(session.Level)
}
