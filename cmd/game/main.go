// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/notify"
	"go-space-shooter/internal/state"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine  *state.StateMachine
	width, height int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	skipMenu := flag.Bool("skip-menu", false, "start the game without the start screen")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	toasts := notify.NewQueue(config.ToastFrames, config.ToastCapacity)
	toasts.Subscribe(dispatcher)
	game := app.NewGame(tuning, dispatcher, logger)

	sm := state.NewStateMachine() // Создаём машину состояний
	play := func() state.State { return state.NewGameState(sm, game, toasts, fonts) }
	if *skipMenu {
		sm.SetState(play()) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, fonts, play)) // Устанавливаем состояние меню
	}

	width := int(tuning.FieldWidth)
	height := int(tuning.FieldHeight) + config.ControlBandHeight
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Space Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, width: width, height: height}); err != nil {
		log.Fatal(err)
	}
}
