package app

import (
	"testing"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/pkg/render"
	"go-space-shooter/pkg/render/mocks"

	"go.uber.org/mock/gomock"
)

func TestDraw_BeforeStartOnlyClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().Clear(config.BackgroundColor).Times(1)

	newTestGame(nil).Draw(s)
}

func TestDraw_RunningDrawsEntitiesAndHUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	g := startedGame(t)

	s.EXPECT().Clear(config.BackgroundColor)
	// корабль и каждый враг рисуются двумя прямоугольниками
	s.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2 + 24*2)
	gomock.InOrder(
		s.EXPECT().Text("Score: 0", 10.0, 20.0, render.TextSmall, config.TextLightColor),
		s.EXPECT().Text("Level: 1", 10.0, 40.0, render.TextSmall, config.TextLightColor),
		s.EXPECT().Text("Coins: 0", 10.0, 60.0, render.TextSmall, config.TextLightColor),
	)

	g.Draw(s)
}

func TestDraw_PausedOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	g := startedGame(t)
	g.Update(input.ActionSet(0).With(input.TogglePause))

	s.EXPECT().Clear(gomock.Any())
	s.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().Text("PAUSED", 200.0, 320.0, render.TextLarge, config.TextLightColor).Times(1)
	s.EXPECT().Text(gomock.Any(), gomock.Any(), gomock.Any(), render.TextSmall, gomock.Any()).Times(3)

	g.Draw(s)
}

func TestDraw_GameOverOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	g := startedGame(t)
	g.session.Score = 1500
	breachAtPlayer(g)
	g.Update(noActions)

	s.EXPECT().Clear(gomock.Any())
	s.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().Text("GAME OVER", 180.0, 320.0, render.TextLarge, config.TextLightColor).Times(1)
	s.EXPECT().Text("Final Score: 1500", 180.0, 350.0, render.TextSmall, config.TextLightColor).Times(1)
	s.EXPECT().Text(gomock.Any(), gomock.Any(), gomock.Any(), render.TextSmall, gomock.Any()).Times(3)

	g.Draw(s)
}

func TestSnapshot_IsDetached(t *testing.T) {
	g := startedGame(t)
	snap := g.Snapshot()
	snap.Enemies = snap.Enemies[:0]
	snap.Player.X = 0
	if len(g.Enemies()) != 24 || g.Player().X != 220 {
		t.Error("Modifying a snapshot must not affect the game")
	}
	if snap.HUD.Level != 1 || snap.Overlay.Kind != OverlayNone {
		t.Errorf("Unexpected snapshot HUD/overlay: %+v %+v", snap.HUD, snap.Overlay)
	}
}
