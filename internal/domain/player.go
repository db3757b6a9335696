package domain

import "fmt"

// Movable - способность сущности перемещаться по сетке
type Movable interface {
	CanMove(g *Game, d Direction) bool
	DoMove(g *Game, d Direction)
}

// Player - единственный игрок сессии, переживает смену уровней
type Player struct {
	Pos       Position
	Facing    Direction
	Alive     bool
	Winner    bool
	Keys      int
	Bombs     int // доступные бомбы
	BombRange int
	Lives     int

	// InvulnerableUntil - до какого тика игрок неуязвим после удара
	InvulnerableUntil int64

	moveRequested bool
	requested     Direction
}

func NewPlayer(pos Position) *Player {
	return &Player{
		Pos:       pos,
		Facing:    South,
		Alive:     true,
		Bombs:     DefaultBombs,
		BombRange: DefaultBombRange,
		Lives:     DefaultPlayerLives,
	}
}

// RequestMove запоминает желаемое направление. Реальный шаг - в Update.
func (p *Player) RequestMove(d Direction) {
	p.moveRequested = true
	p.requested = d
}

// HasPendingMove - есть ли необработанный запрос движения
func (p *Player) HasPendingMove() bool {
	return p.moveRequested
}

// CanMove проверяет шаг с учетом декора, ящиков и монстров
func (p *Player) CanMove(g *Game, d Direction) bool {
	next := d.NextPosition(p.Pos)
	if !next.Inside(g.World.Dimension) {
		return false
	}
	if g.MonsterAt(next) != nil {
		return false
	}

	decor := g.World.Get(next)
	if decor.IsPushable() {
		return canPushTo(g, d.NextPosition(next))
	}
	return decor.IsTraversable()
}

func canPushTo(g *Game, target Position) bool {
	return target.Inside(g.World.Dimension) &&
		g.World.Get(target) == DecorEmpty &&
		g.MonsterAt(target) == nil &&
		g.BombAt(target) == nil
}

// DoMove совершает шаг (предполагается, что CanMove уже вернул true)
func (p *Player) DoMove(g *Game, d Direction) {
	next := d.NextPosition(p.Pos)
	if g.World.Get(next).IsPushable() {
		g.World.Set(d.NextPosition(next), DecorBox)
		g.World.Set(next, DecorEmpty)
	}
	p.Pos = next
	p.enter(g, g.World.Get(next))
}

// enter применяет эффект клетки, на которую встал игрок
func (p *Player) enter(g *Game, decor Decor) {
	if decor.IsCollectible() {
		p.collect(decor)
		g.World.Set(p.Pos, DecorEmpty)
		return
	}

	switch decor.Transition() {
	case TransitionNext:
		g.RequestLevelChange(false)
	case TransitionPrev:
		g.RequestLevelChange(true)
	}

	if decor.IsGoal() {
		p.Winner = true
	}
}

func (p *Player) collect(decor Decor) {
	switch decor {
	case DecorKey:
		p.Keys++
	case DecorHeart:
		p.Lives++
	case DecorBombNumberInc:
		p.Bombs++
	case DecorBombNumberDec:
		if p.Bombs > MinBombs {
			p.Bombs--
		}
	case DecorBombRangeInc:
		p.BombRange++
	case DecorBombRangeDec:
		if p.BombRange > MinBombRange {
			p.BombRange--
		}
	}
}

// Update применяет запрос движения и проверяет контакт с монстрами
func (p *Player) Update(g *Game, tick int64) {
	if !p.Alive || p.Winner {
		p.moveRequested = false
		return
	}

	if p.moveRequested {
		p.moveRequested = false
		p.Facing = p.requested
		if p.CanMove(g, p.requested) {
			p.DoMove(g, p.requested)
		}
	}

	if g.MonsterAt(p.Pos) != nil {
		p.Damage(tick, g.Rules.InvulnerableTicks)
	}
}

// Damage снимает жизнь, если игрок не под защитой. Возвращает true, если урон прошел.
func (p *Player) Damage(tick, invulnerableTicks int64) bool {
	if !p.Alive || tick < p.InvulnerableUntil {
		return false
	}
	p.Lives--
	p.InvulnerableUntil = tick + invulnerableTicks
	if p.Lives <= 0 {
		p.Lives = 0
		p.Alive = false
	}
	return true
}

// UseKey тратит ключ. Без ключей - ErrInvalidState, состояние не меняется.
func (p *Player) UseKey() error {
	if p.Keys <= 0 {
		return fmt.Errorf("use key with %d keys: %w", p.Keys, ErrInvalidState)
	}
	p.Keys--
	return nil
}

// PlaceBomb ставит бомбу под игроком, если есть запас. Иначе - (nil, false).
func (p *Player) PlaceBomb(tick, fuse int64) (*Bomb, bool) {
	if p.Bombs <= 0 {
		return nil, false
	}
	p.Bombs--
	return NewBomb(p.Pos, tick, fuse, p.BombRange), true
}

// IsTerminal - игра для игрока закончена (проигрыш или победа)
func (p *Player) IsTerminal() bool {
	return !p.Alive || p.Winner
}
