package domain

import "math/rand"

// newTestGame создает пустой мир w x h с игроком в (px, py)
func newTestGame(w, h, px, py int) *Game {
	world := NewWorld(1, Dimension{Width: w, Height: h})
	player := NewPlayer(Position{X: px, Y: py})
	return NewGame(world, player, Rules{BombFuse: 10, InvulnerableTicks: 5}, rand.New(rand.NewSource(1)))
}

// fixedStrategy всегда идет в одну сторону
type fixedStrategy struct {
	dir Direction
}

func (s fixedStrategy) Name() string { return "fixed" }

func (s fixedStrategy) NextDirection(*Monster, *Game) (Direction, bool) {
	return s.dir, true
}
