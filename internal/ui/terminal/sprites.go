package terminal

import (
	"bombquest/internal/core/types"
	"bombquest/internal/domain"
	"bombquest/internal/engine"
)

// sprite рисует один glyph. Позиция читается при каждом Render,
// поэтому спрайт следует за сущностью.
type sprite struct {
	screen  *Screen
	pos     func() domain.Position
	glyph   types.Glyph
	last    domain.Position
	drawn   bool
	removed bool
}

func (sp *sprite) Render() {
	if sp.removed {
		return
	}
	sp.last = sp.pos()
	sp.drawn = true
	sp.screen.put(sp.last, sp.glyph)
}

func (sp *sprite) Remove() {
	if sp.removed {
		return
	}
	sp.removed = true
	if sp.drawn {
		sp.screen.erase(sp.last)
	}
}

func (s *Screen) newSprite(pos func() domain.Position, g types.Glyph) engine.Sprite {
	return &sprite{screen: s, pos: pos, glyph: g}
}

func fixed(p domain.Position) func() domain.Position {
	return func() domain.Position { return p }
}

// ResetScene очищает экран под карту нового размера
func (s *Screen) ResetScene(dim domain.Dimension) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dim = dim
	s.screen.Clear()
	s.inFrame = true
}

func (s *Screen) CreateDecor(pos domain.Position, decor domain.Decor) engine.Sprite {
	return s.newSprite(fixed(pos), decor.Glyph())
}

func (s *Screen) CreatePlayer(p *domain.Player) engine.Sprite {
	return s.newSprite(func() domain.Position { return p.Pos }, domain.PlayerGlyph)
}

func (s *Screen) CreateMonster(m *domain.Monster) engine.Sprite {
	return s.newSprite(func() domain.Position { return m.Pos }, domain.MonsterGlyph)
}

func (s *Screen) CreateBomb(b *domain.Bomb) engine.Sprite {
	return s.newSprite(func() domain.Position { return b.Pos }, domain.BombGlyph)
}

func (s *Screen) CreateExplosion(pos domain.Position) engine.Sprite {
	return s.newSprite(fixed(pos), domain.ExplosionGlyph)
}
