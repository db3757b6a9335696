package systems

import (
	"bombquest/internal/domain"
	"bombquest/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Idle - монстр-препятствие, никогда не ходит
type Idle struct{}

func (Idle) Name() string { return "idle" }

func (Idle) NextDirection(*domain.Monster, *domain.Game) (domain.Direction, bool) {
	return 0, false
}

// Wander - случайное легальное направление
type Wander struct{}

func (Wander) Name() string { return "wander" }

func (Wander) NextDirection(m *domain.Monster, g *domain.Game) (domain.Direction, bool) {
	moves := LegalMoves(g, m)
	if len(moves) == 0 {
		return 0, false
	}
	if g.Rng == nil {
		return moves[0], true
	}
	return moves[g.Rng.Intn(len(moves))], true
}

// Chase - кратчайший путь к игроку (BFS от игрока по клеткам, открытым для монстров)
type Chase struct{}

func (Chase) Name() string { return "chase" }

func (Chase) NextDirection(m *domain.Monster, g *domain.Game) (domain.Direction, bool) {
	if g.Player == nil || !g.Player.Alive {
		return 0, false
	}

	dist := bfsDistanceMap(g, g.Player.Pos, m)

	best, bestDist := domain.Direction(0), -1
	for _, d := range LegalMoves(g, m) {
		next := d.NextPosition(m.Pos)
		nd, ok := dist[next]
		if !ok {
			continue
		}
		if bestDist == -1 || nd < bestDist {
			best, bestDist = d, nd
		}
	}

	if bestDist == -1 {
		// Пути нет - стоим
		logger.Log.WithFields(logrus.Fields{
			"component": "ai",
			"strategy":  "chase",
			"pos":       m.Pos,
			"target":    g.Player.Pos,
		}).Debug("No path to target")
		return 0, false
	}
	return best, true
}

// bfsDistanceMap считает расстояния от цели до всех достижимых клеток.
// Другие монстры считаются препятствиями, сам монстр - нет.
func bfsDistanceMap(g *domain.Game, target domain.Position, self *domain.Monster) map[domain.Position]int {
	dist := make(map[domain.Position]int)
	if !target.Inside(g.World.Dimension) {
		return dist
	}

	dist[target] = 0
	queue := []domain.Position{target}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range domain.Directions() {
			next := d.NextPosition(cur)
			if _, seen := dist[next]; seen {
				continue
			}
			if !isOpenForMonster(g, next) {
				continue
			}
			if other := g.MonsterAt(next); other != nil && other != self {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// StrategyForLevel - ИИ монстров уровня: на первом бродят, глубже преследуют
func StrategyForLevel(level int) domain.Strategy {
	if level <= 1 {
		return Wander{}
	}
	return Chase{}
}

// MovePeriod - период хода монстров на уровне. С глубиной монстры быстрее.
func MovePeriod(base, minPeriod, step int64, level int) int64 {
	period := base - int64(level-1)*step
	if period < minPeriod {
		return minPeriod
	}
	return period
}
