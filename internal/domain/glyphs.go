package domain

import "bombquest/internal/core/types"

// Подсказки отрисовки подвижных объектов
var (
	PlayerGlyph    = types.MakeGlyph(0x00BFFF, '@')
	MonsterGlyph   = types.MakeGlyph(0xFF4500, 'M')
	BombGlyph      = types.MakeGlyph(0xFFFFFF, 'o')
	ExplosionGlyph = types.MakeGlyph(0xFFA500, 'x')
)
