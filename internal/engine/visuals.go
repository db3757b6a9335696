package engine

import (
	"bombquest/internal/domain"
)

type explosion struct {
	sprite Sprite
	until  int64
}

// visualLayer держит спрайты текущей сцены в порядке отрисовки:
// бомбы, декор, взрывы, монстры, игрок.
type visualLayer struct {
	factory SpriteFactory

	decor      []Sprite
	player     Sprite
	monsters   map[*domain.Monster]Sprite
	bombs      map[*domain.Bomb]Sprite
	explosions []explosion
}

func newVisualLayer(factory SpriteFactory) *visualLayer {
	return &visualLayer{
		factory:  factory,
		monsters: make(map[*domain.Monster]Sprite),
		bombs:    make(map[*domain.Bomb]Sprite),
	}
}

// reset пересоздает сцену и все спрайты под текущий уровень
func (v *visualLayer) reset(g *domain.Game) {
	v.clearEntities()
	v.removeDecor()
	if v.player != nil {
		v.player.Remove()
		v.player = nil
	}

	v.factory.ResetScene(g.World.Dimension)
	v.rebuildDecor(g.World)
	v.player = v.factory.CreatePlayer(g.Player)
	for _, m := range g.Monsters {
		if m.Alive {
			v.monsters[m] = v.factory.CreateMonster(m)
		}
	}
	for _, b := range g.Bombs {
		v.addBomb(b)
	}
}

// rebuildDecor пересоздает спрайты декора по миру
func (v *visualLayer) rebuildDecor(w *domain.World) {
	v.removeDecor()
	w.ForEach(func(p domain.Position, d domain.Decor) {
		v.decor = append(v.decor, v.factory.CreateDecor(p, d))
	})
}

func (v *visualLayer) removeDecor() {
	for _, s := range v.decor {
		s.Remove()
	}
	v.decor = v.decor[:0]
}

// clearEntities убирает спрайты монстров, бомб и взрывов (смена уровня)
func (v *visualLayer) clearEntities() {
	for m, s := range v.monsters {
		s.Remove()
		delete(v.monsters, m)
	}
	for b, s := range v.bombs {
		s.Remove()
		delete(v.bombs, b)
	}
	for _, e := range v.explosions {
		e.sprite.Remove()
	}
	v.explosions = nil
}

func (v *visualLayer) addBomb(b *domain.Bomb) {
	if _, ok := v.bombs[b]; ok {
		return
	}
	v.bombs[b] = v.factory.CreateBomb(b)
}

func (v *visualLayer) removeBomb(b *domain.Bomb) {
	if s, ok := v.bombs[b]; ok {
		s.Remove()
		delete(v.bombs, b)
	}
}

func (v *visualLayer) removeMonsters(dead []*domain.Monster) {
	for _, m := range dead {
		if s, ok := v.monsters[m]; ok {
			s.Remove()
			delete(v.monsters, m)
		}
	}
}

func (v *visualLayer) addExplosion(p domain.Position, until int64) {
	v.explosions = append(v.explosions, explosion{
		sprite: v.factory.CreateExplosion(p),
		until:  until,
	})
}

// expireExplosions убирает догоревшие взрывы
func (v *visualLayer) expireExplosions(tick int64) {
	alive := v.explosions[:0]
	for _, e := range v.explosions {
		if tick >= e.until {
			e.sprite.Remove()
			continue
		}
		alive = append(alive, e)
	}
	v.explosions = alive
}

func (v *visualLayer) render(g *domain.Game) {
	for _, b := range g.Bombs {
		if s, ok := v.bombs[b]; ok {
			s.Render()
		}
	}
	for _, s := range v.decor {
		s.Render()
	}
	for _, e := range v.explosions {
		e.sprite.Render()
	}
	for _, m := range g.Monsters {
		if s, ok := v.monsters[m]; ok {
			s.Render()
		}
	}
	if v.player != nil {
		v.player.Render()
	}
}
