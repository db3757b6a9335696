package types

import "fmt"

// Glyph - упакованная подсказка отрисовки: ASCII-символ + RGB-цвет в одном uint32.
//
//	[0:8]  - символ, маска 0xFF
//	[8:32] - цвет 0xRRGGBB, маска 0xFFFFFF
//
// Ядро игры не знает, как рисуется клетка. Оно только отдает Glyph
// фабрике спрайтов, а та уже решает, что с ним делать.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph собирает Glyph из цвета 0xRRGGBB (старшие биты отбрасываются) и символа.
//
//	MakeGlyph(0xFFA500, 'B') // оранжевый ящик
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Char возвращает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Color возвращает цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// RGB раскладывает цвет на компоненты (удобно для терминальных библиотек).
func (g Glyph) RGB() (r, gr, b int32) {
	c := g.Color()
	return int32(c >> 16 & 0xFF), int32(c >> 8 & 0xFF), int32(c & 0xFF)
}

// HexColor возвращает цвет строкой вида "#00FF00" (для JSON-снапшотов).
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String реализует fmt.Stringer: Glyph{char='B', color=#FFA500}
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}
