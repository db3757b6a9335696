package domain

import (
	"errors"
	"testing"
)

func TestPlayer_Move(t *testing.T) {
	// [ @ . # ]
	g := newTestGame(3, 1, 0, 0)
	g.World.Set(Position{X: 2, Y: 0}, DecorStone)

	g.Player.RequestMove(East)
	g.Player.Update(g, 1)

	if g.Player.Pos != (Position{X: 1, Y: 0}) {
		t.Fatalf("Expected pos (1,0), got %v", g.Player.Pos)
	}

	// В стену - стоим, но поворачиваемся
	g.Player.RequestMove(East)
	g.Player.Update(g, 2)
	if g.Player.Pos != (Position{X: 1, Y: 0}) {
		t.Error("Player moved into a wall!")
	}
	if g.Player.Facing != East {
		t.Errorf("Facing = %v, want E", g.Player.Facing)
	}

	// За пределы карты
	g.Player.RequestMove(North)
	g.Player.Update(g, 3)
	if g.Player.Pos != (Position{X: 1, Y: 0}) {
		t.Error("Player moved out of bounds!")
	}
	if g.Player.Facing != North {
		t.Error("Blocked move should still turn the player")
	}
}

func TestPlayer_RequestIsConsumed(t *testing.T) {
	g := newTestGame(5, 1, 0, 0)

	g.Player.RequestMove(East)
	g.Player.Update(g, 1)
	g.Player.Update(g, 2)

	if g.Player.Pos.X != 1 {
		t.Errorf("One request must yield one step, got x=%d", g.Player.Pos.X)
	}
	if g.Player.HasPendingMove() {
		t.Error("Request should be cleared after update")
	}
}

func TestPlayer_MonsterBlocksMovement(t *testing.T) {
	g := newTestGame(3, 1, 0, 0)
	g.Monsters = append(g.Monsters, NewMonster(Position{X: 1, Y: 0}, nil, 10, 0))

	g.Player.RequestMove(East)
	g.Player.Update(g, 1)

	if g.Player.Pos != (Position{X: 0, Y: 0}) {
		t.Errorf("Monster should block the move, player at %v", g.Player.Pos)
	}
}

func TestPlayer_Pickups(t *testing.T) {
	tests := []struct {
		name  string
		decor Decor
		check func(p *Player) bool
	}{
		{"key", DecorKey, func(p *Player) bool { return p.Keys == 1 }},
		{"heart", DecorHeart, func(p *Player) bool { return p.Lives == DefaultPlayerLives+1 }},
		{"bomb number inc", DecorBombNumberInc, func(p *Player) bool { return p.Bombs == DefaultBombs+1 }},
		{"bomb number dec keeps minimum", DecorBombNumberDec, func(p *Player) bool { return p.Bombs == MinBombs }},
		{"bomb range inc", DecorBombRangeInc, func(p *Player) bool { return p.BombRange == DefaultBombRange+1 }},
		{"bomb range dec keeps minimum", DecorBombRangeDec, func(p *Player) bool { return p.BombRange == MinBombRange }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(2, 1, 0, 0)
			g.World.Set(Position{X: 1, Y: 0}, tt.decor)
			g.World.SetChanged(false)

			g.Player.RequestMove(East)
			g.Player.Update(g, 1)

			if !tt.check(g.Player) {
				t.Errorf("Pickup %v not applied: %+v", tt.decor, *g.Player)
			}
			if g.World.Get(Position{X: 1, Y: 0}) != DecorEmpty {
				t.Error("Collected decor should disappear")
			}
			if !g.World.HasChanged() {
				t.Error("Collecting should mark the world changed")
			}
		})
	}
}

func TestPlayer_PushBox(t *testing.T) {
	// [ @ B . ]
	g := newTestGame(3, 1, 0, 0)
	g.World.Set(Position{X: 1, Y: 0}, DecorBox)

	g.Player.RequestMove(East)
	g.Player.Update(g, 1)

	if g.Player.Pos != (Position{X: 1, Y: 0}) {
		t.Fatalf("Player should step into the box cell, at %v", g.Player.Pos)
	}
	if g.World.Get(Position{X: 2, Y: 0}) != DecorBox {
		t.Error("Box should be pushed to (2,0)")
	}

	// Дальше ящик упирается в край карты
	g.Player.RequestMove(East)
	g.Player.Update(g, 2)
	if g.Player.Pos != (Position{X: 1, Y: 0}) {
		t.Error("Box against the border must not move")
	}
}

func TestPlayer_DoorsAndGoal(t *testing.T) {
	g := newTestGame(4, 1, 1, 0)
	g.World.Set(Position{X: 0, Y: 0}, DecorDoorPrevOpened)
	g.World.Set(Position{X: 2, Y: 0}, DecorDoorNextOpened)

	g.Player.RequestMove(East)
	g.Player.Update(g, 1)
	if !g.IsChanged() || g.IsBacking() {
		t.Errorf("Next door should request forward transition, changed=%v backing=%v", g.IsChanged(), g.IsBacking())
	}

	g.ClearLevelChange()
	g.Player.Pos = Position{X: 1, Y: 0}
	g.Player.RequestMove(West)
	g.Player.Update(g, 2)
	if !g.IsChanged() || !g.IsBacking() {
		t.Error("Prev door should request backward transition")
	}

	g.ClearLevelChange()
	g.World.Set(Position{X: 3, Y: 0}, DecorGoal)
	g.Player.Pos = Position{X: 2, Y: 0}
	g.Player.RequestMove(East)
	g.Player.Update(g, 3)
	if !g.Player.Winner {
		t.Error("Stepping on the goal should win")
	}
}

func TestPlayer_ClosedDoorBlocks(t *testing.T) {
	g := newTestGame(2, 1, 0, 0)
	g.World.Set(Position{X: 1, Y: 0}, DecorDoorNextClosed)

	g.Player.RequestMove(East)
	g.Player.Update(g, 1)

	if g.Player.Pos.X != 0 || g.IsChanged() {
		t.Error("Closed door must block and not trigger a transition")
	}
}

func TestPlayer_UseKey(t *testing.T) {
	p := NewPlayer(Position{})

	err := p.UseKey()
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("UseKey without keys: expected ErrInvalidState, got %v", err)
	}
	if p.Keys != 0 {
		t.Errorf("Failed UseKey must not change key count, got %d", p.Keys)
	}

	p.Keys = 2
	if err := p.UseKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Keys != 1 {
		t.Errorf("Keys = %d, want 1", p.Keys)
	}
}

func TestPlayer_PlaceBombBudget(t *testing.T) {
	p := NewPlayer(Position{X: 3, Y: 4})
	p.Bombs = 1

	b, ok := p.PlaceBomb(7, 10)
	if !ok || b == nil {
		t.Fatal("First bomb should be placed")
	}
	if b.Pos != p.Pos || b.PlacedAt != 7 || b.Fuse != 10 || b.Range != p.BombRange {
		t.Errorf("Unexpected bomb: %+v", *b)
	}

	if _, ok := p.PlaceBomb(8, 10); ok {
		t.Error("Second bomb must not be placed with zero budget")
	}
	if p.Bombs != 0 {
		t.Errorf("Bomb count = %d, want 0 (never negative)", p.Bombs)
	}
}

func TestPlayer_DamageAndInvulnerability(t *testing.T) {
	p := NewPlayer(Position{})
	p.Lives = 2

	if !p.Damage(10, 5) {
		t.Fatal("First hit should land")
	}
	if p.Damage(12, 5) {
		t.Error("Hit during invulnerability should be ignored")
	}
	if p.Lives != 1 || !p.Alive {
		t.Errorf("After one hit: lives=%d alive=%v", p.Lives, p.Alive)
	}

	p.Damage(15, 5)
	if p.Alive || p.Lives != 0 {
		t.Errorf("Second hit should kill: lives=%d alive=%v", p.Lives, p.Alive)
	}
}

func TestPlayer_MonsterContact(t *testing.T) {
	g := newTestGame(3, 3, 1, 1)
	g.Player.Lives = 1
	g.Monsters = append(g.Monsters, NewMonster(Position{X: 1, Y: 1}, nil, 10, 0))

	g.Player.Update(g, 1)

	if g.Player.Alive {
		t.Error("Player sharing a cell with a monster should lose the last life")
	}
}

func TestPlayer_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		alive  bool
		winner bool
		want   bool
	}{
		{"Playing", true, false, false},
		{"Dead", false, false, true},
		{"Winner", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(Position{})
			p.Alive = tt.alive
			p.Winner = tt.winner
			if got := p.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
