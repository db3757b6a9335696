package engine

import (
	"bombquest/internal/core/types"
	"bombquest/internal/domain"
	"bombquest/pkg/api"
)

// BuildSnapshot создает "снимок" текущего уровня для зрителей.
func (e *Engine) BuildSnapshot() api.Snapshot {
	g := e.game
	world := g.World

	msgType := "UPDATE"
	if e.state.IsEnded() || e.state == StateExited {
		msgType = "END"
	}

	// 1. Карта (только непустые клетки)
	var mapDTO []api.TileView
	world.ForEach(func(p domain.Position, d domain.Decor) {
		glyph := d.Glyph()
		mapDTO = append(mapDTO, api.TileView{
			X: p.X, Y: p.Y,
			Kind:   d.String(),
			Symbol: string(rune(glyph.Char())),
			Color:  glyph.HexColor(),
		})
	})

	// 2. Сущности: бомбы, монстры, игрок
	var entities []api.EntityView
	for _, b := range g.Bombs {
		v := newEntityView("BOMB", b.Pos, domain.BombGlyph)
		v.ExpiresAt = b.ExpiresAt()
		entities = append(entities, v)
	}
	for _, m := range g.Monsters {
		if !m.Alive {
			continue
		}
		v := newEntityView("MONSTER", m.Pos, domain.MonsterGlyph)
		v.Facing = m.Facing.String()
		entities = append(entities, v)
	}
	p := g.Player
	pv := newEntityView("PLAYER", p.Pos, domain.PlayerGlyph)
	pv.Facing = p.Facing.String()
	entities = append(entities, pv)

	return api.Snapshot{
		Type:     msgType,
		Session:  e.session,
		Tick:     g.Tick,
		Level:    g.Level,
		State:    e.snapshotState(),
		Grid:     &api.GridMeta{Width: world.Dimension.Width, Height: world.Dimension.Height},
		Map:      mapDTO,
		Entities: entities,
		Player: &api.PlayerView{
			Lives:     p.Lives,
			Keys:      p.Keys,
			Bombs:     p.Bombs,
			BombRange: p.BombRange,
			IsDead:    !p.Alive,
			IsWinner:  p.Winner,
		},
		Levels: g.Levels.Levels(),
		Logs:   e.Logs(),
		Fuses:  e.fuses.DebugDump(),
	}
}

// snapshotState - для зрителей переход не виден, он внутри одного тика
func (e *Engine) snapshotState() string {
	if e.state == StateTransitioning {
		return StateRunning.String()
	}
	return e.state.String()
}

func newEntityView(kind string, pos domain.Position, glyph types.Glyph) api.EntityView {
	v := api.EntityView{Type: kind}
	v.Pos.X = pos.X
	v.Pos.Y = pos.Y
	v.Render.Symbol = string(rune(glyph.Char()))
	v.Render.Color = glyph.HexColor()
	return v
}
