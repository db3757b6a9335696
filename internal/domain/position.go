package domain

import "fmt"

// Position - координаты клетки. Значение неизменяемое, сравнивается через ==.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dimension - размеры уровня
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Inside проверяет, что позиция лежит в пределах 0 <= x < W, 0 <= y < H
func (p Position) Inside(d Dimension) bool {
	return p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.Height
}

// Shift возвращает новую позицию со смещением (текущая не меняется)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo - расстояние по сетке без диагоналей
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction - одно из четырех направлений
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionDeltas = [...]Position{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var directionNames = [...]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Directions возвращает все направления в стабильном порядке N, E, S, W
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// Delta - единичный вектор направления
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d%4]
	return v.X, v.Y
}

// NextPosition возвращает p + delta. Входная позиция не мутирует.
func (d Direction) NextPosition(p Position) Position {
	dx, dy := d.Delta()
	return p.Shift(dx, dy)
}

// Opposite - противоположное направление
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	return directionNames[d%4]
}
