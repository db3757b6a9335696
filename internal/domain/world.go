package domain

import "sort"

// World - сетка одного уровня: декор, размеры и флаг изменений.
// Живет в кэше уровней до конца сессии.
type World struct {
	Name      string
	Level     int
	Dimension Dimension

	// Start - стартовая позиция игрока из файла уровня
	Start Position
	// Spawns - точки появления монстров (из описания уровня, не меняются)
	Spawns []Position
	// AI - имя стратегии монстров уровня; пусто = по глубине уровня
	AI string

	tiles   map[Position]Decor
	changed bool
}

func NewWorld(level int, dim Dimension) *World {
	return &World{
		Level:     level,
		Dimension: dim,
		tiles:     make(map[Position]Decor),
	}
}

// Get возвращает декор клетки или DecorEmpty
func (w *World) Get(p Position) Decor {
	return w.tiles[p]
}

// Set заменяет декор и взводит флаг changed.
// Границы не проверяются - это забота вызывающего.
func (w *World) Set(p Position, d Decor) {
	if d == DecorEmpty {
		delete(w.tiles, p)
	} else {
		w.tiles[p] = d
	}
	w.changed = true
}

// ForEach обходит все непустые клетки построчно (y, затем x)
func (w *World) ForEach(visit func(Position, Decor)) {
	positions := make([]Position, 0, len(w.tiles))
	for p := range w.tiles {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	for _, p := range positions {
		visit(p, w.tiles[p])
	}
}

// Find ищет первую клетку с указанным декором (в порядке ForEach)
func (w *World) Find(kind Decor) (Position, bool) {
	var (
		found Position
		ok    bool
	)
	w.ForEach(func(p Position, d Decor) {
		if !ok && d == kind {
			found, ok = p, true
		}
	})
	return found, ok
}

// Count - количество непустых клеток
func (w *World) Count() int {
	return len(w.tiles)
}

func (w *World) HasChanged() bool {
	return w.changed
}

func (w *World) SetChanged(changed bool) {
	w.changed = changed
}
