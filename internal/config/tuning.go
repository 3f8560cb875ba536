package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning хранит параметры симуляции. Значения по умолчанию берутся из констант,
// файл конфигурации может переопределить любое из них.
type Tuning struct {
	FieldWidth  float64 `yaml:"field_width"`
	FieldHeight float64 `yaml:"field_height"`

	Player     PlayerTuning     `yaml:"player"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Wave       WaveTuning       `yaml:"wave"`

	KillScore int `yaml:"kill_score"`
	WaveBonus int `yaml:"wave_bonus"`
}

type PlayerTuning struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	OffsetY float64 `yaml:"offset_y"`
}

type ProjectileTuning struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"`
}

type EnemyTuning struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	RowStep float64 `yaml:"row_step"`
}

type WaveTuning struct {
	BaseRows       int     `yaml:"base_rows"`
	Columns        int     `yaml:"columns"`
	OriginX        float64 `yaml:"origin_x"`
	OriginY        float64 `yaml:"origin_y"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// Default возвращает параметры, собранные из констант пакета.
func Default() Tuning {
	return Tuning{
		FieldWidth:  FieldWidth,
		FieldHeight: FieldHeight,
		Player: PlayerTuning{
			Width:   PlayerWidth,
			Height:  PlayerHeight,
			Speed:   PlayerSpeed,
			OffsetY: PlayerOffsetY,
		},
		Projectile: ProjectileTuning{
			Width:    ProjectileWidth,
			Height:   ProjectileHeight,
			Speed:    ProjectileSpeed,
			Cooldown: FireCooldown,
		},
		Enemy: EnemyTuning{
			Width:   EnemyWidth,
			Height:  EnemyHeight,
			RowStep: EnemyRowStep,
		},
		Wave: WaveTuning{
			BaseRows:       WaveBaseRows,
			Columns:        WaveColumns,
			OriginX:        WaveOriginX,
			OriginY:        WaveOriginY,
			SpacingX:       WaveSpacingX,
			SpacingY:       WaveSpacingY,
			BaseSpeed:      WaveBaseSpeed,
			SpeedIncrement: WaveSpeedIncrement,
		},
		KillScore: KillScore,
		WaveBonus: WaveBonus,
	}
}

// Load читает YAML-файл поверх Default. Пустой путь даёт значения по умолчанию.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(file, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// Validate проверяет, что из параметров можно построить поле и первую волну.
func (t Tuning) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"field_width", t.FieldWidth},
		{"field_height", t.FieldHeight},
		{"player.width", t.Player.Width},
		{"player.height", t.Player.Height},
		{"player.speed", t.Player.Speed},
		{"projectile.width", t.Projectile.Width},
		{"projectile.height", t.Projectile.Height},
		{"projectile.speed", t.Projectile.Speed},
		{"enemy.width", t.Enemy.Width},
		{"enemy.height", t.Enemy.Height},
		{"wave.base_speed", t.Wave.BaseSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}
	if t.Projectile.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("projectile.cooldown must not be negative, got %d", t.Projectile.Cooldown))
	}
	if t.Wave.BaseRows < 0 || t.Wave.Columns <= 0 {
		errs = append(errs, fmt.Errorf("wave grid %d+level x %d is empty", t.Wave.BaseRows, t.Wave.Columns))
	}
	if t.Wave.SpeedIncrement < 0 {
		errs = append(errs, errors.New("wave.speed_increment must not be negative"))
	}
	if t.Player.Width > t.FieldWidth {
		errs = append(errs, fmt.Errorf("player is wider than the field (%v > %v)", t.Player.Width, t.FieldWidth))
	}
	gridRight := t.Wave.OriginX + float64(t.Wave.Columns-1)*t.Wave.SpacingX + t.Enemy.Width
	if t.Wave.OriginX <= 0 || gridRight >= t.FieldWidth {
		errs = append(errs, fmt.Errorf("wave grid [%v, %v] does not fit inside field width %v", t.Wave.OriginX, gridRight, t.FieldWidth))
	}
	// корабль целиком внутри поля
	if t.Player.OffsetY < t.Player.Height || t.Player.OffsetY > t.FieldHeight {
		errs = append(errs, fmt.Errorf("player.offset_y %v must be within [%v, %v]", t.Player.OffsetY, t.Player.Height, t.FieldHeight))
	}
	// нижний ряд первой волны (BaseRows+1 рядов) стартует выше корабля
	gridBottom := t.Wave.OriginY + float64(t.Wave.BaseRows)*t.Wave.SpacingY + t.Enemy.Height
	if t.Wave.OriginY < 0 || gridBottom >= t.PlayerY() {
		errs = append(errs, fmt.Errorf("first wave bottom %v reaches the player row %v", gridBottom, t.PlayerY()))
	}
	return errors.Join(errs...)
}

// PlayerY возвращает вертикальную позицию корабля игрока.
func (t Tuning) PlayerY() float64 {
	return t.FieldHeight - t.Player.OffsetY
}
