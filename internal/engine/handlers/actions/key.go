package actions

import (
	"bombquest/internal/domain"
	"bombquest/internal/engine/handlers"
)

// HandleKey открывает закрытую дверь перед игроком, если есть ключ
func HandleKey(ctx handlers.Context, _ domain.ActionType) (handlers.Result, error) {
	p := ctx.Game.Player
	target := p.Facing.NextPosition(p.Pos)

	if ctx.Game.World.Get(target) != domain.DecorDoorNextClosed || p.Keys <= 0 {
		return handlers.EmptyResult(), nil
	}

	ctx.Game.World.Set(target, domain.DecorDoorNextOpened)
	if err := p.UseKey(); err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{Msg: "Дверь открыта.", MsgType: "INFO"}, nil
}
