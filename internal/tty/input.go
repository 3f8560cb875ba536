package tty

import (
	"sync"

	"go-space-shooter/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Command: управляющие клавиши, которые не входят в набор действий симуляции.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
)

// HeldKeys эмулирует удержание клавиш: терминал присылает только нажатия
// (с автоповтором), поэтому действие считается удерживаемым holdTicks тиков
// после последнего нажатия. TogglePause живёт ровно один тик.
type HeldKeys struct {
	mu        sync.Mutex
	holdTicks uint64
	lastSeen  map[input.Action]uint64
	pending   input.ActionSet
	tick      uint64
}

func NewHeldKeys(holdTicks uint64) *HeldKeys {
	return &HeldKeys{holdTicks: holdTicks, lastSeen: make(map[input.Action]uint64)}
}

// Press отмечает нажатие. Безопасно вызывать из горутины чтения событий.
func (h *HeldKeys) Press(a input.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if a == input.TogglePause {
		h.pending = h.pending.With(a)
		return
	}
	h.lastSeen[a] = h.tick + 1
}

// Sample продвигает счётчик на тик и возвращает удерживаемые в нём действия.
func (h *HeldKeys) Sample() input.ActionSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tick++

	set := h.pending
	h.pending = 0
	for a, seen := range h.lastSeen {
		if h.tick-seen < h.holdTicks {
			set = set.With(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return set
}

// Translate переводит нажатие клавиши в действие или управляющую команду.
func Translate(ev *tcell.EventKey) (input.Action, bool, Command) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.MoveLeft, true, CommandNone
	case tcell.KeyRight:
		return input.MoveRight, true, CommandNone
	case tcell.KeyEnter:
		return 0, false, CommandRestart
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return 0, false, CommandQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return input.MoveLeft, true, CommandNone
		case 'd', 'D':
			return input.MoveRight, true, CommandNone
		case ' ':
			return input.Fire, true, CommandNone
		case 'p', 'P':
			return input.TogglePause, true, CommandNone
		case 'q', 'Q':
			return 0, false, CommandQuit
		}
	}
	return 0, false, CommandNone
}
