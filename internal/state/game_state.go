// internal/state/game_state.go
package state

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/notify"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState: каждый тик ebiten превращается в один тик симуляции.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	toasts   *notify.Queue
	controls *ui.Controls
	surface  *ui.Surface
	toastUI  *ui.ToastView
	touches  []ebiten.TouchID
}

func NewGameState(sm *StateMachine, game *app.Game, toasts *notify.Queue, fonts *ui.Fonts) *GameState {
	fieldW, fieldH := game.Tuning.FieldWidth, game.Tuning.FieldHeight
	return &GameState{
		sm:       sm,
		game:     game,
		toasts:   toasts,
		controls: ui.NewControls(int(fieldW), int(fieldH)),
		surface:  ui.NewSurface(fonts),
		toastUI:  ui.NewToastView(toasts, fieldW),
	}
}

// Enter даёт симуляции сигнал старта.
func (g *GameState) Enter() {
	g.game.Start()
}

func (g *GameState) Update() error {
	actions := g.controls.Sample()

	if g.game.Phase() == component.GameOver && g.restartRequested() {
		g.game.Restart()
		return nil
	}

	g.game.Update(actions)
	g.toasts.Update()
	return nil
}

// restartRequested: Enter, либо новое касание или клик внутри поля. Кнопки
// управления под полем игру не перезапускают.
func (g *GameState) restartRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	fieldW, fieldH := g.game.Tuning.FieldWidth, g.game.Tuning.FieldHeight
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		if input.InField(x, y, fieldW, fieldH) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return input.InField(x, y, fieldW, fieldH)
	}
	return false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.surface.Target(screen)
	g.game.Draw(s)
	g.controls.Draw(s)
	g.toastUI.Draw(s)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
