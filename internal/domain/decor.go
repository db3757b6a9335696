package domain

import "bombquest/internal/core/types"

// Decor - содержимое клетки (стена, дверь, ключ, цель...).
// Tagged-variant: поведение определяется видом, а не иерархией типов.
type Decor uint8

const (
	DecorEmpty Decor = iota
	DecorStone
	DecorTree
	DecorBox
	DecorKey
	DecorHeart
	DecorBombNumberInc
	DecorBombNumberDec
	DecorBombRangeInc
	DecorBombRangeDec
	DecorDoorPrevOpened
	DecorDoorNextOpened
	DecorDoorNextClosed
	DecorGoal
)

// Transition - куда ведет клетка при входе на нее
type Transition int8

const (
	TransitionNone Transition = 0
	TransitionPrev Transition = -1
	TransitionNext Transition = 1
)

type decorInfo struct {
	name         string
	code         byte
	traversable  bool
	destructible bool
	transition   Transition
	glyph        types.Glyph
}

var decorTable = map[Decor]decorInfo{
	DecorEmpty:          {name: "Empty", code: '.', traversable: true},
	DecorStone:          {name: "Stone", code: 'S', glyph: types.MakeGlyph(0x808080, '#')},
	DecorTree:           {name: "Tree", code: 'T', glyph: types.MakeGlyph(0x228B22, 'T')},
	DecorBox:            {name: "Box", code: 'B', destructible: true, glyph: types.MakeGlyph(0xC68642, 'B')},
	DecorKey:            {name: "Key", code: 'K', traversable: true, destructible: true, glyph: types.MakeGlyph(0xFFD700, 'k')},
	DecorHeart:          {name: "Heart", code: 'H', traversable: true, destructible: true, glyph: types.MakeGlyph(0xFF3355, 'h')},
	DecorBombNumberInc:  {name: "BombNumberInc", code: '+', traversable: true, destructible: true, glyph: types.MakeGlyph(0x66FF66, '+')},
	DecorBombNumberDec:  {name: "BombNumberDec", code: '-', traversable: true, destructible: true, glyph: types.MakeGlyph(0xFF6666, '-')},
	DecorBombRangeInc:   {name: "BombRangeInc", code: '>', traversable: true, destructible: true, glyph: types.MakeGlyph(0x66FF66, '>')},
	DecorBombRangeDec:   {name: "BombRangeDec", code: '<', traversable: true, destructible: true, glyph: types.MakeGlyph(0xFF6666, '<')},
	DecorDoorPrevOpened: {name: "DoorPrevOpened", code: 'V', traversable: true, transition: TransitionPrev, glyph: types.MakeGlyph(0x8B5A2B, '[')},
	DecorDoorNextOpened: {name: "DoorNextOpened", code: 'n', traversable: true, transition: TransitionNext, glyph: types.MakeGlyph(0x8B5A2B, ']')},
	DecorDoorNextClosed: {name: "DoorNextClosed", code: 'N', glyph: types.MakeGlyph(0x8B5A2B, '|')},
	DecorGoal:           {name: "Goal", code: 'W', traversable: true, glyph: types.MakeGlyph(0xFF69B4, '*')},
}

var decorByCode = func() map[byte]Decor {
	m := make(map[byte]Decor, len(decorTable)+1)
	for d, info := range decorTable {
		m[info.code] = d
	}
	m['_'] = DecorEmpty
	return m
}()

// ParseDecor конвертирует символ файла уровня в Decor
func ParseDecor(code byte) (Decor, bool) {
	d, ok := decorByCode[code]
	return d, ok
}

func (d Decor) String() string {
	if info, ok := decorTable[d]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Code - символ в файле уровня
func (d Decor) Code() byte {
	return decorTable[d].code
}

// Glyph - подсказка для отрисовки
func (d Decor) Glyph() types.Glyph {
	return decorTable[d].glyph
}

// IsTraversable - можно ли встать на клетку
func (d Decor) IsTraversable() bool {
	return decorTable[d].traversable
}

// IsDestructible - уничтожается ли взрывом
func (d Decor) IsDestructible() bool {
	return decorTable[d].destructible
}

// IsPushable - ящик можно толкать
func (d Decor) IsPushable() bool {
	return d == DecorBox
}

// IsCollectible - подбирается игроком при входе
func (d Decor) IsCollectible() bool {
	switch d {
	case DecorKey, DecorHeart, DecorBombNumberInc, DecorBombNumberDec, DecorBombRangeInc, DecorBombRangeDec:
		return true
	}
	return false
}

// Transition - запрашивает ли клетка смену уровня
func (d Decor) Transition() Transition {
	return decorTable[d].transition
}

// IsGoal - клетка победы
func (d Decor) IsGoal() bool {
	return d == DecorGoal
}
