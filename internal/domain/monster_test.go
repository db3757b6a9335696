package domain

import "testing"

func TestMonster_CanMove(t *testing.T) {
	// [ M # . ]
	// [ . . B ]
	g := newTestGame(3, 2, 1, 1)
	m := NewMonster(Position{X: 0, Y: 0}, nil, 1, 0)
	other := NewMonster(Position{X: 0, Y: 1}, nil, 1, 0)
	g.Monsters = []*Monster{m, other}
	g.World.Set(Position{X: 1, Y: 0}, DecorStone)

	if m.CanMove(g, East) {
		t.Error("Monster should not walk into stone")
	}
	if m.CanMove(g, North) {
		t.Error("Monster should not leave the map")
	}
	if m.CanMove(g, South) {
		t.Error("Monster should not walk into another monster")
	}

	g.AddBomb(NewBomb(Position{X: 2, Y: 1}, 0, 10, 1))
	other.Pos = Position{X: 1, Y: 1}
	if other.CanMove(g, East) {
		t.Error("Monster should not walk onto a bomb")
	}

	// Клетка игрока разрешена (атака)
	other.Pos = Position{X: 0, Y: 1}
	g.Player.Pos = Position{X: 1, Y: 1}
	if !other.CanMove(g, East) {
		t.Error("Monster should be able to step onto the player")
	}
}

func TestMonster_UpdateRespectsPeriod(t *testing.T) {
	g := newTestGame(10, 1, 9, 0)
	m := NewMonster(Position{X: 0, Y: 0}, fixedStrategy{dir: East}, 3, 0)
	g.Monsters = []*Monster{m}

	for tick := int64(1); tick <= 9; tick++ {
		m.Update(g, tick)
	}

	// Ходы на тиках 3, 6, 9
	if m.Pos.X != 3 {
		t.Errorf("Monster with period 3 should make 3 steps in 9 ticks, at x=%d", m.Pos.X)
	}
}

func TestMonster_AttacksPlayer(t *testing.T) {
	g := newTestGame(2, 1, 1, 0)
	g.Player.Lives = 1
	m := NewMonster(Position{X: 0, Y: 0}, fixedStrategy{dir: East}, 1, 0)
	g.Monsters = []*Monster{m}

	m.Update(g, 1)

	if m.Pos != g.Player.Pos {
		t.Fatalf("Monster should step onto the player, at %v", m.Pos)
	}
	if g.Player.Alive {
		t.Error("Player should be killed by the monster")
	}
}

func TestMonster_DeadDoesNothing(t *testing.T) {
	g := newTestGame(3, 1, 2, 0)
	m := NewMonster(Position{X: 0, Y: 0}, fixedStrategy{dir: East}, 1, 0)
	m.Kill()
	g.Monsters = []*Monster{m}

	m.Update(g, 5)

	if m.Pos.X != 0 {
		t.Error("Dead monster must not move")
	}
	if g.MonsterAt(Position{X: 0, Y: 0}) != nil {
		t.Error("MonsterAt must ignore dead monsters")
	}
}
