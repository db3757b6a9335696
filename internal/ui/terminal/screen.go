// Package terminal - терминальный фронтенд игры на tcell:
// спрайты, строка состояния и опрос клавиатуры.
package terminal

import (
	"bombquest/internal/core/types"
	"bombquest/internal/domain"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Строка 0 - статус, карта начинается со строки mapTop.
const mapTop = 1

// Screen рисует сцену в tcell.Screen.
// Первый вывод после Show очищает буфер, так что каждый тик кадр собирается заново.
type Screen struct {
	mu      sync.Mutex
	screen  tcell.Screen
	dim     domain.Dimension
	inFrame bool

	message string
	outcome messageStyle
}

type messageStyle uint8

const (
	messageNone messageStyle = iota
	messageLost
	messageWon
)

func NewScreen(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault)
	return &Screen{screen: s}
}

// Raw отдает исходный tcell.Screen (для опроса событий)
func (s *Screen) Raw() tcell.Screen {
	return s.screen
}

// Close возвращает терминал в исходное состояние
func (s *Screen) Close() {
	s.screen.Fini()
}

func glyphStyle(g types.Glyph) tcell.Style {
	r, gr, b := g.RGB()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, gr, b))
}

func (s *Screen) beginFrame() {
	if !s.inFrame {
		s.screen.Clear()
		s.inFrame = true
	}
}

// put рисует glyph в клетке карты. Клетки вне карты игнорируются.
func (s *Screen) put(p domain.Position, g types.Glyph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.X < 0 || p.Y < 0 || p.X >= s.dim.Width || p.Y >= s.dim.Height {
		return
	}
	s.beginFrame()
	s.screen.SetContent(p.X, p.Y+mapTop, rune(g.Char()), nil, glyphStyle(g))
}

func (s *Screen) erase(p domain.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.X < 0 || p.Y < 0 || p.X >= s.dim.Width || p.Y >= s.dim.Height {
		return
	}
	s.screen.SetContent(p.X, p.Y+mapTop, ' ', nil, tcell.StyleDefault)
}

func (s *Screen) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// flush выводит кадр на терминал
func (s *Screen) flush() {
	s.screen.Show()
	s.inFrame = false
}
