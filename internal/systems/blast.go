package systems

import (
	"bombquest/internal/domain"
	"bombquest/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BlastResult - итог взрыва одной или нескольких (цепных) бомб
type BlastResult struct {
	Bombs     []*domain.Bomb    // взорвавшиеся бомбы, первая - инициатор
	Cells     []domain.Position // клетки пламени, без повторов
	Killed    []*domain.Monster // погибшие монстры
	Destroyed []domain.Position // клетки, где декор стал Empty
	PlayerHit bool
}

// Detonate взрывает бомбу и все бомбы, до которых дотянулось пламя.
// Мир, монстры и игрок меняются на месте; бомбы из ростера не удаляются.
func Detonate(g *domain.Game, b *domain.Bomb, tick int64) BlastResult {
	var res BlastResult
	seenCell := make(map[domain.Position]bool)
	seenBomb := map[*domain.Bomb]bool{b: true}

	b.Detonate()
	queue := []*domain.Bomb{b}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Bombs = append(res.Bombs, cur)

		for _, p := range blastCells(g, cur, &res) {
			if !seenCell[p] {
				seenCell[p] = true
				res.Cells = append(res.Cells, p)
			}

			if m := g.MonsterAt(p); m != nil {
				m.Kill()
				res.Killed = append(res.Killed, m)
			}

			for _, other := range g.Bombs {
				if other.Pos == p && !seenBomb[other] {
					seenBomb[other] = true
					other.Detonate()
					queue = append(queue, other)
				}
			}
		}
	}

	if g.Player != nil && seenCell[g.Player.Pos] {
		res.PlayerHit = g.Player.Damage(tick, g.Rules.InvulnerableTicks)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "blast",
		"origin":    b.Pos,
		"bombs":     len(res.Bombs),
		"cells":     len(res.Cells),
		"killed":    len(res.Killed),
		"destroyed": len(res.Destroyed),
		"playerHit": res.PlayerHit,
	}).Debug("Bomb exploded")

	return res
}

// blastCells - крест из клетки бомбы и до Range клеток в каждую сторону.
// Луч останавливается на границе и на любом непустом декоре;
// разрушаемый декор в точке остановки сгорает и входит в пламя.
func blastCells(g *domain.Game, b *domain.Bomb, res *BlastResult) []domain.Position {
	cells := []domain.Position{b.Pos}

	for _, d := range domain.Directions() {
		p := b.Pos
		for i := 0; i < b.Range; i++ {
			p = d.NextPosition(p)
			if !p.Inside(g.World.Dimension) {
				break
			}
			decor := g.World.Get(p)
			if decor == domain.DecorEmpty {
				cells = append(cells, p)
				continue
			}
			if decor.IsDestructible() {
				g.World.Set(p, domain.DecorEmpty)
				res.Destroyed = append(res.Destroyed, p)
				cells = append(cells, p)
			}
			break
		}
	}
	return cells
}
