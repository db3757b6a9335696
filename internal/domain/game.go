package domain

import (
	"math/rand"
	"sort"
)

// Rules - игровые параметры, нужные сущностям во время тика
type Rules struct {
	BombFuse          int64
	InvulnerableTicks int64
}

// Game - агрегат сессии: текущий уровень, мир, игрок, ростеры и кэш уровней
type Game struct {
	Level    int
	World    *World
	Player   *Player
	Monsters []*Monster
	Bombs    []*Bomb // в порядке установки

	Levels *LevelCache
	Rules  Rules
	Rng    *rand.Rand

	// Tick - текущий тик движка (для спавна и фитилей)
	Tick int64

	changed bool // запрошена смена уровня
	backing bool // true = на уровень назад
}

func NewGame(world *World, player *Player, rules Rules, rng *rand.Rand) *Game {
	g := &Game{
		Level:  world.Level,
		World:  world,
		Player: player,
		Levels: NewLevelCache(),
		Rules:  rules,
		Rng:    rng,
	}
	g.Levels.Put(world.Level, world)
	return g
}

// RequestLevelChange взводит флаг перехода
func (g *Game) RequestLevelChange(backing bool) {
	g.changed = true
	g.backing = backing
}

func (g *Game) IsChanged() bool {
	return g.changed
}

func (g *Game) IsBacking() bool {
	return g.backing
}

// ClearLevelChange сбрасывает запрос перехода
func (g *Game) ClearLevelChange() {
	g.changed = false
	g.backing = false
}

// TargetLevel - уровень, на который ведет текущий запрос
func (g *Game) TargetLevel() int {
	if g.backing {
		return g.Level - 1
	}
	return g.Level + 1
}

// MonsterAt возвращает живого монстра в клетке
func (g *Game) MonsterAt(p Position) *Monster {
	for _, m := range g.Monsters {
		if m.Alive && m.Pos == p {
			return m
		}
	}
	return nil
}

// BombAt возвращает невзорванную бомбу в клетке
func (g *Game) BombAt(p Position) *Bomb {
	for _, b := range g.Bombs {
		if !b.Exploded && b.Pos == p {
			return b
		}
	}
	return nil
}

func (g *Game) AddBomb(b *Bomb) {
	g.Bombs = append(g.Bombs, b)
}

// RemoveBomb удаляет бомбу из ростера с сохранением порядка
func (g *Game) RemoveBomb(b *Bomb) {
	for i, other := range g.Bombs {
		if other == b {
			g.Bombs = append(g.Bombs[:i], g.Bombs[i+1:]...)
			return
		}
	}
}

// RemoveDeadMonsters чистит ростер от погибших, возвращает удаленных
func (g *Game) RemoveDeadMonsters() []*Monster {
	var dead []*Monster
	alive := g.Monsters[:0]
	for _, m := range g.Monsters {
		if m.Alive {
			alive = append(alive, m)
		} else {
			dead = append(dead, m)
		}
	}
	g.Monsters = alive
	return dead
}

// LevelCache - арена миров по номеру уровня.
// Повторный вход на уровень возвращает тот же *World.
type LevelCache struct {
	worlds map[int]*World
}

func NewLevelCache() *LevelCache {
	return &LevelCache{worlds: make(map[int]*World)}
}

// Get возвращает закэшированный мир
func (c *LevelCache) Get(level int) (*World, bool) {
	w, ok := c.worlds[level]
	return w, ok
}

// Put кладет мир, только если уровня еще нет в кэше. Возвращает true, если положил.
func (c *LevelCache) Put(level int, w *World) bool {
	if _, ok := c.worlds[level]; ok {
		return false
	}
	c.worlds[level] = w
	return true
}

func (c *LevelCache) Len() int {
	return len(c.worlds)
}

// Levels - номера закэшированных уровней по возрастанию
func (c *LevelCache) Levels() []int {
	levels := make([]int, 0, len(c.worlds))
	for l := range c.worlds {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}
