package handlers

import (
	"bombquest/internal/domain"
)

// Context передает хендлеру состояние игры.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Game *domain.Game
	Tick int64

	// PlaceBomb регистрирует новую бомбу в движке (ростер, фитиль, спрайт)
	PlaceBomb func(b *domain.Bomb)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в лог игры напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, LEVEL)
}

// HandlerFunc - это контракт для любого действия (MOVE_N, BOMB, KEY).
type HandlerFunc func(ctx Context, action domain.ActionType) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
