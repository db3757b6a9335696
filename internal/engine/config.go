package engine

import (
	"bombquest/internal/domain"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig - конфиг не прошел проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config хранит параметры запуска движка.
// Все длительности - в тиках.
type Config struct {
	// Seed - зерно ГСЧ сессии (поведение монстров)
	Seed     int64 `yaml:"seed"`
	TickRate int   `yaml:"tickRate"` // тиков в секунду

	BombFuse          int64 `yaml:"bombFuse"`
	ExplosionTicks    int64 `yaml:"explosionTicks"`
	InvulnerableTicks int64 `yaml:"invulnerableTicks"`

	MonsterPeriod     int64 `yaml:"monsterPeriod"`
	MinMonsterPeriod  int64 `yaml:"minMonsterPeriod"`
	MonsterPeriodStep int64 `yaml:"monsterPeriodStep"`

	StartLevel     int   `yaml:"startLevel"`
	MessageLogSize int   `yaml:"messageLogSize"`
	SnapshotEvery  int64 `yaml:"snapshotEvery"` // как часто рассылать снимок зрителям

	LevelsDir     string `yaml:"levelsDir"`     // пусто = встроенный набор
	SpectatorAddr string `yaml:"spectatorAddr"` // пусто = без зрителей

	// Keys - клавиша -> действие (EXIT, MOVE_N, BOMB, ...)
	Keys map[string]string `yaml:"keys"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:              time.Now().UnixNano(),
		TickRate:          60,
		BombFuse:          240,
		ExplosionTicks:    30,
		InvulnerableTicks: 60,
		MonsterPeriod:     60,
		MinMonsterPeriod:  15,
		MonsterPeriodStep: 10,
		StartLevel:        1,
		MessageLogSize:    50,
		SnapshotEvery:     6,
		Keys: map[string]string{
			"esc":   "EXIT",
			"q":     "EXIT",
			"up":    "MOVE_N",
			"down":  "MOVE_S",
			"left":  "MOVE_W",
			"right": "MOVE_E",
			"w":     "MOVE_N",
			"s":     "MOVE_S",
			"a":     "MOVE_W",
			"d":     "MOVE_E",
			"space": "BOMB",
			"b":     "BOMB",
			"k":     "KEY",
			"e":     "KEY",
		},
	}
}

// LoadConfigFile читает YAML поверх значений по умолчанию.
// Незаданные в файле поля остаются дефолтными.
func LoadConfigFile(path string) (Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv переопределяет адрес зрителей и каталог уровней из окружения
func (c *Config) ApplyEnv() {
	if addr, ok := os.LookupEnv("BQ_SPECTATOR_ADDR"); ok {
		c.SpectatorAddr = addr
	}
	if dir, ok := os.LookupEnv("BQ_LEVELS_DIR"); ok {
		c.LevelsDir = dir
	}
}

// Validate проверяет значения и привязки клавиш
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d: %w", c.TickRate, ErrInvalidConfig)
	}
	if c.BombFuse <= 0 {
		return fmt.Errorf("bombFuse must be positive, got %d: %w", c.BombFuse, ErrInvalidConfig)
	}
	if c.MonsterPeriod <= 0 || c.MinMonsterPeriod <= 0 {
		return fmt.Errorf("monster periods must be positive: %w", ErrInvalidConfig)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("startLevel must be >= 1, got %d: %w", c.StartLevel, ErrInvalidConfig)
	}
	if _, err := c.KeyBindings(); err != nil {
		return err
	}
	return nil
}

// KeyBindings разбирает Keys в действия. Имена клавиш приводятся к нижнему регистру.
func (c Config) KeyBindings() (map[string]domain.ActionType, error) {
	bindings := make(map[string]domain.ActionType, len(c.Keys))
	for key, name := range c.Keys {
		action := domain.ParseAction(name)
		if action == domain.ActionUnknown {
			return nil, fmt.Errorf("key %q bound to unknown action %q: %w", key, name, ErrInvalidConfig)
		}
		bindings[strings.ToLower(key)] = action
	}
	return bindings, nil
}

// TickDuration - длительность одного тика
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Rules - параметры, нужные сущностям во время тика
func (c Config) Rules() domain.Rules {
	return domain.Rules{
		BombFuse:          c.BombFuse,
		InvulnerableTicks: c.InvulnerableTicks,
	}
}
