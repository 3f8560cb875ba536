package tty

import (
	"context"
	"log/slog"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/notify"
	"go-space-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const statusLine = "arrows/a/d move  space fire  p pause  enter start/restart  q quit"

// Runner крутит симуляцию в терминале: тикер задаёт кадры, отдельная горутина
// читает события tcell и только отмечает нажатые клавиши.
type Runner struct {
	screen  tcell.Screen
	game    *app.Game
	toasts  *notify.Queue
	surface *Surface
	keys    *HeldKeys
	logger  *slog.Logger

	commands chan Command
	resized  chan struct{}
}

func NewRunner(screen tcell.Screen, game *app.Game, toasts *notify.Queue, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		screen:   screen,
		game:     game,
		toasts:   toasts,
		surface:  NewSurface(screen, game.Tuning.FieldWidth, game.Tuning.FieldHeight),
		keys:     NewHeldKeys(config.TPS / 3),
		logger:   logger,
		commands: make(chan Command, 8),
		resized:  make(chan struct{}, 1),
	}
}

// Run блокируется до отмены ctx или выхода игрока.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.pollEvents(ctx)

	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.resized:
			r.surface.Resize()
			r.screen.Sync()
		case cmd := <-r.commands:
			if r.handle(cmd) {
				return nil
			}
		case <-ticker.C:
			r.Step()
		}
	}
}

// handle применяет команду и сообщает, нужно ли остановиться.
func (r *Runner) handle(cmd Command) bool {
	switch cmd {
	case CommandQuit:
		r.logger.Info("quit requested", "phase", r.game.Phase().String())
		return true
	case CommandRestart:
		switch r.game.Phase() {
		case component.NotStarted:
			r.game.Start()
		case component.GameOver:
			r.game.Restart()
		}
	}
	return false
}

// Step выполняет один тик: выборка клавиш, обновление, отрисовка.
func (r *Runner) Step() {
	r.game.Update(r.keys.Sample())
	r.toasts.Update()
	r.Draw()
}

func (r *Runner) Draw() {
	r.game.Draw(r.surface)
	if r.game.Phase() == component.NotStarted {
		cx, cy := r.game.Tuning.FieldWidth/2, r.game.Tuning.FieldHeight/2
		r.surface.Text("SPACE SHOOTER - press Enter", cx-110, cy, render.TextLarge, config.TextLightColor)
	}
	for i, t := range r.toasts.Active() {
		y := 100 + float64(i)*config.HUDLineHeight
		r.surface.Text(t.Message, r.game.Tuning.FieldWidth/2-100, y, render.TextSmall, config.TextLightColor)
	}
	r.surface.Status(statusLine)
	r.screen.Show()
}

func (r *Runner) pollEvents(ctx context.Context) {
	for ctx.Err() == nil {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return // экран финализирован
		case *tcell.EventResize:
			select {
			case r.resized <- struct{}{}:
			default:
			}
		case *tcell.EventKey:
			action, ok, cmd := Translate(ev)
			if ok {
				r.keys.Press(action)
			}
			if cmd != CommandNone {
				select {
				case r.commands <- cmd:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
