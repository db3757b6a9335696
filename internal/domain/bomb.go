package domain

// Bomb - бомба с фитилем. Живет от установки до взрыва.
type Bomb struct {
	Pos      Position
	PlacedAt int64 // тик установки
	Fuse     int64 // длительность фитиля в тиках
	Range    int
	Exploded bool
}

func NewBomb(pos Position, tick, fuse int64, blastRange int) *Bomb {
	return &Bomb{Pos: pos, PlacedAt: tick, Fuse: fuse, Range: blastRange}
}

// ExpiresAt - тик, на котором фитиль догорает
func (b *Bomb) ExpiresAt() int64 {
	return b.PlacedAt + b.Fuse
}

// Update продвигает фитиль. Возвращает true, когда бомба взорвалась.
func (b *Bomb) Update(tick int64) bool {
	if !b.Exploded && tick >= b.ExpiresAt() {
		b.Exploded = true
	}
	return b.Exploded
}

// Detonate - преждевременный взрыв (цепная реакция)
func (b *Bomb) Detonate() {
	b.Exploded = true
}
