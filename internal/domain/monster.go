package domain

// Strategy выбирает направление хода монстра (подключаемый ИИ)
type Strategy interface {
	Name() string
	NextDirection(m *Monster, g *Game) (Direction, bool)
}

// Monster - живой монстр уровня. Ростер пересобирается при каждой смене уровня.
type Monster struct {
	Pos      Position
	Facing   Direction
	Alive    bool
	Strategy Strategy

	// Period - сколько тиков между шагами
	Period       int64
	NextMoveTick int64
}

func NewMonster(pos Position, strategy Strategy, period, tick int64) *Monster {
	return &Monster{
		Pos:          pos,
		Facing:       South,
		Alive:        true,
		Strategy:     strategy,
		Period:       period,
		NextMoveTick: tick + period,
	}
}

// CanMove: в пределах карты, пустой декор, нет других монстров и бомб.
// Клетка игрока разрешена - это атака.
func (m *Monster) CanMove(g *Game, d Direction) bool {
	next := d.NextPosition(m.Pos)
	if !next.Inside(g.World.Dimension) {
		return false
	}
	if g.World.Get(next) != DecorEmpty {
		return false
	}
	if other := g.MonsterAt(next); other != nil && other != m {
		return false
	}
	return g.BombAt(next) == nil
}

// DoMove поворачивает монстра и делает шаг, если он возможен
func (m *Monster) DoMove(g *Game, d Direction) {
	m.Facing = d
	if m.CanMove(g, d) {
		m.Pos = d.NextPosition(m.Pos)
	}
}

// Update - один тик монстра. Ходит раз в Period тиков.
func (m *Monster) Update(g *Game, tick int64) {
	if !m.Alive || tick < m.NextMoveTick {
		return
	}
	m.NextMoveTick = tick + m.Period

	if m.Strategy == nil {
		return
	}
	d, ok := m.Strategy.NextDirection(m, g)
	if !ok {
		return
	}
	m.DoMove(g, d)

	if g.Player != nil && m.Pos == g.Player.Pos {
		g.Player.Damage(tick, g.Rules.InvulnerableTicks)
	}
}

// Kill - монстр погиб (взрыв)
func (m *Monster) Kill() {
	m.Alive = false
}
