package api

import "testing"

func TestSnapshot_Validate(t *testing.T) {
	valid := func() Snapshot {
		return Snapshot{
			Type:  "UPDATE",
			Level: 1,
			State: "RUNNING",
			Grid:  &GridMeta{Width: 3, Height: 2},
			Map:   []TileView{{X: 2, Y: 1, Kind: "Stone"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		wantErr bool
	}{
		{"valid", func(*Snapshot) {}, false},
		{"level zero", func(s *Snapshot) { s.Level = 0 }, true},
		{"unknown state", func(s *Snapshot) { s.State = "PAUSED" }, true},
		{"missing grid", func(s *Snapshot) { s.Grid = nil }, true},
		{"tile outside", func(s *Snapshot) { s.Map = append(s.Map, TileView{X: 3, Y: 0}) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
