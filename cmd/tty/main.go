// cmd/tty/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/notify"
	"go-space-shooter/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	logPath := flag.String("log", "shooter-tty.log", "log file; the terminal is busy drawing the game")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	skipMenu := flag.Bool("skip-menu", false, "start the game immediately")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level: %v", err)
	}
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	dispatcher := event.NewDispatcher()
	toasts := notify.NewQueue(config.ToastFrames, config.ToastCapacity)
	toasts.Subscribe(dispatcher)
	game := app.NewGame(tuning, dispatcher, logger)
	if *skipMenu {
		game.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := tty.NewRunner(screen, game, toasts, logger).Run(ctx); err != nil {
		logger.Error("runner stopped", "err", err)
	}
}
