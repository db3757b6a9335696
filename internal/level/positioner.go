package level

import (
	"bombquest/internal/domain"
	"bombquest/internal/systems"
	"bombquest/pkg/logger"

	"github.com/sirupsen/logrus"
)

var strategyByName = map[string]domain.Strategy{
	"idle":   systems.Idle{},
	"wander": systems.Wander{},
	"chase":  systems.Chase{},
}

// Positioner ставит игрока у нужной двери и заново создает монстров уровня
type Positioner struct {
	BasePeriod int64
	MinPeriod  int64
	PeriodStep int64
}

func NewPositioner(base, minPeriod, step int64) *Positioner {
	return &Positioner{BasePeriod: base, MinPeriod: minPeriod, PeriodStep: step}
}

// ChangeLevel: назад - к открытой двери вперед, вперед - к двери назад,
// иначе (старт игры или двери нет) - на старт уровня.
func (ps *Positioner) ChangeLevel(g *domain.Game) {
	w := g.World
	pos := w.Start

	if g.IsChanged() {
		door := domain.DecorDoorPrevOpened
		if g.IsBacking() {
			door = domain.DecorDoorNextOpened
		}
		if p, ok := w.Find(door); ok {
			pos = p
		}
	}
	g.Player.Pos = pos

	strategy := StrategyFor(w)
	period := systems.MovePeriod(ps.BasePeriod, ps.MinPeriod, ps.PeriodStep, g.Level)

	g.Monsters = make([]*domain.Monster, 0, len(w.Spawns))
	for _, spawn := range w.Spawns {
		if spawn == pos {
			continue
		}
		g.Monsters = append(g.Monsters, domain.NewMonster(spawn, strategy, period, g.Tick))
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "positioner",
		"level":     g.Level,
		"player":    pos,
		"monsters":  len(g.Monsters),
		"strategy":  strategy.Name(),
		"period":    period,
	}).Debug("Level populated")
}

// StrategyFor - стратегия монстров уровня: из файла или по глубине
func StrategyFor(w *domain.World) domain.Strategy {
	if s, ok := strategyByName[w.AI]; ok {
		return s
	}
	return systems.StrategyForLevel(w.Level)
}
