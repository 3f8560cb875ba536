// internal/state/menu_state.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState: стартовый экран. Нажатие Space/Enter или касание запускает игру.
type MenuState struct {
	sm      *StateMachine
	next    func() State
	surface *ui.Surface
	touches []ebiten.TouchID
}

func NewMenuState(sm *StateMachine, fonts *ui.Fonts, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next, surface: ui.NewSurface(fonts)}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() error {
	m.touches = inpututil.AppendJustPressedTouchIDs(m.touches[:0])
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(m.touches) > 0 {
		m.sm.SetState(m.next())
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	s := m.surface.Target(screen)
	s.Clear(config.BackgroundColor)

	w := float64(screen.Bounds().Dx())
	s.CenteredText("SPACE SHOOTER", 0, 220, w, 40, render.TextLarge, config.TextLightColor)

	btnW, btnH := 220.0, 48.0
	x, y := (w-btnW)/2, 300.0
	s.FillRect(x, y, btnW, btnH, config.ControlColor)
	s.StrokeRect(x, y, btnW, btnH, 2, config.TextLightColor)
	s.CenteredText("START", x, y, btnW, btnH, render.TextLarge, config.TextLightColor)

	s.CenteredText("Arrows/A/D move, Space fire, P pause", 0, 400, w, 20, render.TextSmall, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
