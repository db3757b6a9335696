package systems

import (
	"bombquest/internal/domain"
)

// LegalMoves возвращает направления, в которые сущность может шагнуть прямо сейчас.
// Порядок стабильный (N, E, S, W), это важно для детерминированных тестов.
func LegalMoves(g *domain.Game, mv domain.Movable) []domain.Direction {
	var moves []domain.Direction
	for _, d := range domain.Directions() {
		if mv.CanMove(g, d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// isOpenForMonster - клетка проходима для монстров (без учета других монстров)
func isOpenForMonster(g *domain.Game, p domain.Position) bool {
	return p.Inside(g.World.Dimension) &&
		g.World.Get(p) == domain.DecorEmpty &&
		g.BombAt(p) == nil
}
