package terminal

import (
	"bombquest/internal/domain"
	"bombquest/internal/engine"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGold)
	lostStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	wonStyle    = tcell.StyleDefault.Foreground(tcell.ColorLimeGreen).Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// StatusLine форматирует строку состояния игрока
func StatusLine(g *domain.Game) string {
	p := g.Player
	return fmt.Sprintf("Уровень %d  Жизни %d  Ключи %d  Бомбы %d  Радиус %d",
		g.Level, p.Lives, p.Keys, p.Bombs, p.BombRange)
}

// Update рисует статус и выводит собранный кадр
func (s *Screen) Update(g *domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginFrame()
	s.drawText(0, 0, statusStyle, StatusLine(g))

	if s.message != "" {
		style := lostStyle
		if s.outcome == messageWon {
			style = wonStyle
		}
		row := s.dim.Height + mapTop + 1
		s.drawText(0, row, style, s.message)
		s.drawText(0, row+1, hintStyle, "Нажмите Esc для выхода")
	}

	s.flush()
}

// ShowMessage запоминает финальное сообщение. Оно остается на экране до выхода.
func (s *Screen) ShowMessage(text string, outcome engine.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = text
	s.outcome = messageLost
	if outcome == engine.OutcomeWon {
		s.outcome = messageWon
	}
}

// Message - текущее финальное сообщение (пусто, пока игра идет)
func (s *Screen) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
