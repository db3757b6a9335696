package actions

import (
	"bombquest/internal/domain"
	"bombquest/internal/engine/handlers"
	"fmt"
)

// HandleMove запоминает направление. Шаг делает Player.Update в этом же тике.
func HandleMove(ctx handlers.Context, action domain.ActionType) (handlers.Result, error) {
	dir, ok := action.Direction()
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("action %s is not a move: %w", action, domain.ErrInvalidState)
	}
	ctx.Game.Player.RequestMove(dir)
	return handlers.EmptyResult(), nil
}
