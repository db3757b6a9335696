package actions

import (
	"bombquest/internal/domain"
	"bombquest/internal/engine/handlers"
)

// Register заполняет реестр хендлеров действий игрока.
// EXIT не регистрируется: его обрабатывает сам движок.
func Register(registry map[domain.ActionType]handlers.HandlerFunc) {
	registry[domain.ActionMoveNorth] = HandleMove
	registry[domain.ActionMoveSouth] = HandleMove
	registry[domain.ActionMoveEast] = HandleMove
	registry[domain.ActionMoveWest] = HandleMove
	registry[domain.ActionBomb] = HandleBomb
	registry[domain.ActionKey] = HandleKey
}
