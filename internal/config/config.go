// internal/config/config.go
package config

import "image/color"

const (
	FieldWidth  = 480
	FieldHeight = 640
	TPS         = 60 // тиков симуляции в секунду

	PlayerWidth   = 40.0
	PlayerHeight  = 20.0
	PlayerSpeed   = 5.0  // пикселей за кадр
	PlayerOffsetY = 60.0 // отступ корабля от нижнего края поля

	ProjectileWidth  = 4.0
	ProjectileHeight = 10.0
	ProjectileSpeed  = 7.0 // вверх, пикселей за кадр
	FireCooldown     = 15  // кадров между выстрелами

	EnemyWidth   = 30.0
	EnemyHeight  = 20.0
	EnemyRowStep = 30.0 // спуск при отскоке от края

	WaveBaseRows       = 3
	WaveColumns        = 6
	WaveOriginX        = 40.0
	WaveOriginY        = 40.0
	WaveSpacingX       = 60.0
	WaveSpacingY       = 40.0
	WaveBaseSpeed      = 1.0
	WaveSpeedIncrement = 0.2 // прибавка скорости за уровень

	KillScore = 100 // очков за врага
	WaveBonus = 100 // монет за волну

	ToastFrames   = 120 // ~2 секунды при 60 TPS
	ToastCapacity = 4

	HUDTextX      = 10
	HUDLineHeight = 20
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	PlayerHullColor  = color.RGBA{0, 255, 128, 255}
	PlayerCabinColor = color.RGBA{0, 170, 0, 255}
	ProjectileColor  = color.RGBA{255, 255, 0, 255}
	EnemyBodyColor   = color.RGBA{255, 0, 0, 255}
	EnemyCoreColor   = color.RGBA{153, 0, 0, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	ToastColor       = color.RGBA{20, 20, 30, 220}
	ControlColor     = color.RGBA{70, 100, 120, 160}
)

const (
	ControlBandHeight = 80 // полоса сенсорных кнопок под полем
	ToastFadeFrames   = 12
)
