package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var knownStates = map[string]bool{
	"RUNNING": true,
	"WON":     true,
	"LOST":    true,
	"EXITED":  true,
}

func (s Snapshot) Validate() error {
	if s.Level < 1 {
		return fmt.Errorf("level must be >= 1, got %d", s.Level)
	}
	if !knownStates[s.State] {
		return fmt.Errorf("unknown state %q", s.State)
	}
	if s.Grid == nil {
		return errors.New("grid is required")
	}
	for _, t := range s.Map {
		if t.X < 0 || t.Y < 0 || t.X >= s.Grid.Width || t.Y >= s.Grid.Height {
			return fmt.Errorf("tile (%d,%d) outside grid %dx%d", t.X, t.Y, s.Grid.Width, s.Grid.Height)
		}
	}
	return nil
}
