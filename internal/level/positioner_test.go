package level

import (
	"bombquest/internal/domain"
	"math/rand"
	"testing"
)

func newPositionerGame(t *testing.T, level int, data string) *domain.Game {
	t.Helper()
	w, err := Parse(level, []byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g := domain.NewGame(w, domain.NewPlayer(domain.Position{}), domain.Rules{}, rand.New(rand.NewSource(1)))
	g.Level = level
	return g
}

const doorsLevel = `
rows:
  - "V.P.n"
  - "..M.."
`

func TestPositioner_Placement(t *testing.T) {
	tests := []struct {
		name    string
		changed bool
		backing bool
		want    domain.Position
	}{
		{"game start", false, false, domain.Position{X: 2, Y: 0}},
		{"advancing", true, false, domain.Position{X: 0, Y: 0}},
		{"backing", true, true, domain.Position{X: 4, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPositionerGame(t, 2, doorsLevel)
			if tt.changed {
				g.RequestLevelChange(tt.backing)
			}

			NewPositioner(60, 20, 10).ChangeLevel(g)

			if g.Player.Pos != tt.want {
				t.Errorf("player at %v, want %v", g.Player.Pos, tt.want)
			}
		})
	}
}

func TestPositioner_FallsBackToStart(t *testing.T) {
	g := newPositionerGame(t, 2, "rows: [\"P..\"]")
	g.RequestLevelChange(true)

	NewPositioner(60, 20, 10).ChangeLevel(g)

	if g.Player.Pos != (domain.Position{X: 0, Y: 0}) {
		t.Errorf("Without a door the player goes to start, got %v", g.Player.Pos)
	}
}

func TestPositioner_Monsters(t *testing.T) {
	g := newPositionerGame(t, 3, doorsLevel)
	g.Tick = 100
	g.Monsters = []*domain.Monster{domain.NewMonster(domain.Position{}, nil, 1, 0)}

	NewPositioner(60, 20, 10).ChangeLevel(g)

	if len(g.Monsters) != 1 {
		t.Fatalf("Roster must be rebuilt from spawns, got %d monsters", len(g.Monsters))
	}
	m := g.Monsters[0]
	if m.Pos != (domain.Position{X: 2, Y: 1}) {
		t.Errorf("monster at %v", m.Pos)
	}
	if m.Strategy.Name() != "chase" {
		t.Errorf("Level 3 monsters should chase, got %s", m.Strategy.Name())
	}
	if m.Period != 40 || m.NextMoveTick != 140 {
		t.Errorf("period=%d next=%d, want 40/140", m.Period, m.NextMoveTick)
	}
}

func TestStrategyFor(t *testing.T) {
	w := domain.NewWorld(5, domain.Dimension{})
	w.AI = "idle"
	if StrategyFor(w).Name() != "idle" {
		t.Error("Explicit AI from file should win")
	}
	w.AI = ""
	if StrategyFor(w).Name() != "chase" {
		t.Error("Default AI for deep levels is chase")
	}
}
