package event

const (
	GameStarted    EventType = "GameStarted"    // Сессия запущена или перезапущена
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг сбит снарядом
	LevelComplete  EventType = "LevelComplete"  // Волна зачищена
	GameOver       EventType = "GameOver"       // Враг дошёл до линии обороны
)

// Данные события LevelComplete.
type LevelCompleteData struct {
	Level   int // номер пройденного уровня
	Coins   int // начислено монет
	Message string
}

type EnemyDestroyedData struct {
	X, Y  float64
	Score int // счёт после попадания
}

type GameOverData struct {
	FinalScore int
	Level      int
}
