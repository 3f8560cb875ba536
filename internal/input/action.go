// internal/input/action.go
package input

import "fmt"

// Action: логическое действие игрока, не привязанное к устройству ввода.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Fire
	TogglePause
	actionCount
)

var actionNames = [actionCount]string{
	MoveLeft:    "moveLeft",
	MoveRight:   "moveRight",
	Fire:        "fire",
	TogglePause: "togglePause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction переводит имя действия в Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions перечисляет все известные действия.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ActionSet хранит набор удерживаемых сейчас действий. Значение, а не ссылка:
// симуляция читает копию и не может изменить состояние слоя ввода.
type ActionSet uint8

func (s ActionSet) Held(a Action) bool {
	return s&(1<<a) != 0
}

// With возвращает набор с добавленными действиями.
func (s ActionSet) With(actions ...Action) ActionSet {
	for _, a := range actions {
		s |= 1 << a
	}
	return s
}

func (s *ActionSet) Set(a Action, held bool) {
	if held {
		*s |= 1 << a
	} else {
		*s &^= 1 << a
	}
}

func (s ActionSet) String() string {
	out := "["
	for _, a := range Actions() {
		if s.Held(a) {
			if len(out) > 1 {
				out += " "
			}
			out += a.String()
		}
	}
	return out + "]"
}

// EdgeDetector ловит момент нажатия (переход из отпущенного в нажатое).
type EdgeDetector struct {
	prev ActionSet
}

// Pressed возвращает действия, нажатые сейчас, но отпущенные при прошлом вызове.
func (d *EdgeDetector) Pressed(now ActionSet) ActionSet {
	pressed := now &^ d.prev
	d.prev = now
	return pressed
}

func (d *EdgeDetector) Reset() {
	d.prev = 0
}
