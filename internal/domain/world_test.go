package domain

import "testing"

func TestWorld_GetSet(t *testing.T) {
	w := NewWorld(1, Dimension{Width: 5, Height: 5})

	if got := w.Get(Position{X: 1, Y: 1}); got != DecorEmpty {
		t.Errorf("Get on empty tile = %v, want Empty", got)
	}
	if w.HasChanged() {
		t.Error("Fresh world should not be marked changed")
	}

	w.Set(Position{X: 1, Y: 1}, DecorStone)

	if got := w.Get(Position{X: 1, Y: 1}); got != DecorStone {
		t.Errorf("Get after Set = %v, want Stone", got)
	}
	if !w.HasChanged() {
		t.Error("Set should mark world as changed")
	}

	w.SetChanged(false)
	w.Set(Position{X: 1, Y: 1}, DecorEmpty)

	if w.Count() != 0 {
		t.Errorf("Setting Empty should drop the tile, count = %d", w.Count())
	}
	if !w.HasChanged() {
		t.Error("Clearing a tile should mark world as changed")
	}
}

func TestWorld_ForEachIsRowMajor(t *testing.T) {
	w := NewWorld(1, Dimension{Width: 4, Height: 4})
	w.Set(Position{X: 3, Y: 2}, DecorKey)
	w.Set(Position{X: 0, Y: 2}, DecorBox)
	w.Set(Position{X: 2, Y: 0}, DecorTree)
	w.Set(Position{X: 1, Y: 3}, DecorGoal)

	want := []Position{{X: 2, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}, {X: 1, Y: 3}}

	// Порядок обхода должен быть стабильным между вызовами
	for run := 0; run < 3; run++ {
		var got []Position
		w.ForEach(func(p Position, _ Decor) { got = append(got, p) })

		if len(got) != len(want) {
			t.Fatalf("ForEach visited %d tiles, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("run %d: visit #%d = %v, want %v", run, i, got[i], want[i])
			}
		}
	}
}

func TestWorld_Find(t *testing.T) {
	w := NewWorld(2, Dimension{Width: 3, Height: 3})
	w.Set(Position{X: 2, Y: 2}, DecorDoorPrevOpened)

	pos, ok := w.Find(DecorDoorPrevOpened)
	if !ok || pos != (Position{X: 2, Y: 2}) {
		t.Errorf("Find = %v,%v, want (2,2),true", pos, ok)
	}
	if _, ok := w.Find(DecorGoal); ok {
		t.Error("Find should miss absent decor")
	}
}

func TestParseDecor(t *testing.T) {
	tests := []struct {
		code byte
		want Decor
		ok   bool
	}{
		{'S', DecorStone, true},
		{'N', DecorDoorNextClosed, true},
		{'n', DecorDoorNextOpened, true},
		{'_', DecorEmpty, true},
		{'.', DecorEmpty, true},
		{'?', DecorEmpty, false},
	}

	for _, tt := range tests {
		got, ok := ParseDecor(tt.code)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseDecor(%q) = %v,%v, want %v,%v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDecor_Capabilities(t *testing.T) {
	if DecorDoorNextClosed.IsTraversable() {
		t.Error("Closed door must block movement")
	}
	if !DecorDoorNextOpened.IsTraversable() || DecorDoorNextOpened.Transition() != TransitionNext {
		t.Error("Opened door must be traversable and lead to the next level")
	}
	if DecorDoorPrevOpened.Transition() != TransitionPrev {
		t.Error("Prev door must lead back")
	}
	if !DecorKey.IsCollectible() || DecorGoal.IsCollectible() {
		t.Error("Key is collectible, goal is not")
	}
	if !DecorBox.IsDestructible() || DecorStone.IsDestructible() {
		t.Error("Box is destructible, stone is not")
	}
}
