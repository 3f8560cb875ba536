// internal/app/game.go
package app

import (
	"log/slog"
	"slices"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/system"

	"github.com/google/uuid"
)

// Game хранит состояние сессии и выполняет один тик симуляции на вызов Update.
// Всё изменяемое состояние живёт здесь; сущности не ссылаются на Game.
type Game struct {
	Tuning          config.Tuning
	EventDispatcher *event.Dispatcher
	WaveSystem      *system.WaveSystem

	sessionID   string
	baseLogger  *slog.Logger
	logger      *slog.Logger
	phase       component.Phase
	session     component.Session
	player      component.Player
	projectiles []component.Projectile
	enemies     []component.Enemy
	pauseEdge   input.EdgeDetector
	ticks       uint64
}

// NewGame создаёт игру в фазе NotStarted. Сессия начинается по Start.
func NewGame(t config.Tuning, eventDispatcher *event.Dispatcher, logger *slog.Logger) *Game {
	if err := t.Validate(); err != nil {
		panic("app: invalid tuning: " + err.Error())
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		Tuning:          t,
		EventDispatcher: eventDispatcher,
		WaveSystem:      system.NewWaveSystem(t, eventDispatcher, logger),
		baseLogger:      logger,
		logger:          logger,
		phase:           component.NotStarted,
		session:         component.NewSession(),
		player:          component.NewPlayer(t),
	}
}

// Start переводит NotStarted -> Running. В любой другой фазе ничего не делает.
func (g *Game) Start() {
	if g.phase != component.NotStarted {
		return
	}
	g.begin()
}

// Restart начинает новую сессию из любой фазы. Единственный путь, на котором
// счёт, уровень и монеты могут уменьшиться.
func (g *Game) Restart() {
	g.logger.Info("session restart", "phase", g.phase.String(), "score", g.session.Score)
	g.begin()
}

func (g *Game) begin() {
	g.sessionID = uuid.NewString()
	g.logger = g.baseLogger.With("session", g.sessionID)
	g.session = component.NewSession()
	g.player = component.NewPlayer(g.Tuning)
	g.projectiles = nil
	g.pauseEdge.Reset()
	g.ticks = 0
	g.enemies = g.WaveSystem.Spawn(g.session.Level)
	g.phase = component.Running

	g.logger.Info("session started", "enemies", len(g.enemies))
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted, Data: g.sessionID})
}

// Update выполняет один тик симуляции. Порядок шагов фиксирован.
func (g *Game) Update(actions input.ActionSet) {
	pressed := g.pauseEdge.Pressed(actions)
	if pressed.Held(input.TogglePause) {
		g.togglePause()
	}
	if g.phase != component.Running {
		return
	}
	g.ticks++

	g.movePlayer(actions)
	g.fire(actions)

	for i := range g.projectiles {
		g.projectiles[i].Update()
	}
	g.projectiles = system.DropDead(g.projectiles)

	for i := range g.enemies {
		g.enemies[i].Update(g.Tuning.FieldWidth, g.Tuning.Enemy.RowStep)
	}

	g.resolveHits()

	if system.AnyBreach(g.enemies, g.player) {
		g.phase = component.GameOver
		g.logger.Info("game over", "score", g.session.Score, "level", g.session.Level, "ticks", g.ticks)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverData{FinalScore: g.session.Score, Level: g.session.Level},
		})
		return
	}

	if len(g.enemies) == 0 {
		g.enemies = g.WaveSystem.Advance(&g.session)
	}
}

func (g *Game) togglePause() {
	switch g.phase {
	case component.Running:
		g.phase = component.Paused
	case component.Paused:
		g.phase = component.Running
	default:
		return
	}
	g.logger.Debug("pause toggled", "phase", g.phase.String())
}

func (g *Game) movePlayer(actions input.ActionSet) {
	if actions.Held(input.MoveLeft) {
		g.player.Move(-1, g.Tuning.FieldWidth)
	}
	if actions.Held(input.MoveRight) {
		g.player.Move(1, g.Tuning.FieldWidth)
	}
}

func (g *Game) fire(actions input.ActionSet) {
	if actions.Held(input.Fire) && g.session.Cooldown <= 0 {
		x, y := g.player.Muzzle(g.Tuning.Projectile.Width)
		g.projectiles = append(g.projectiles, component.NewProjectile(x, y, g.Tuning))
		g.session.Cooldown = g.Tuning.Projectile.Cooldown
	}
	g.session.Cooldown = max(0, g.session.Cooldown-1)
}

func (g *Game) resolveHits() {
	res := system.ResolveHits(g.projectiles, g.enemies)
	g.projectiles = res.Projectiles
	g.enemies = res.Enemies
	for _, e := range res.Kills {
		g.session.Score += g.Tuning.KillScore
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{X: e.X, Y: e.Y, Score: g.session.Score},
		})
	}
}

func (g *Game) Phase() component.Phase     { return g.phase }
func (g *Game) Session() component.Session { return g.session }
func (g *Game) SessionID() string          { return g.sessionID }
func (g *Game) Ticks() uint64              { return g.ticks }

// Player, Projectiles и Enemies отдают копии: внешний код не может изменить
// состояние симуляции.
func (g *Game) Player() component.Player { return g.player }

func (g *Game) Projectiles() []component.Projectile { return slices.Clone(g.projectiles) }

func (g *Game) Enemies() []component.Enemy { return slices.Clone(g.enemies) }
