package component

// Phase: фаза игровой сессии.
type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Session хранит счёт и прогресс текущей сессии. Принадлежит только игровому циклу.
type Session struct {
	Score    int
	Level    int
	Coins    int
	Cooldown int // кадров до следующего разрешённого выстрела
}

// NewSession возвращает начальное состояние: уровень 1, остальное по нулям.
func NewSession() Session {
	return Session{Level: 1}
}
