package actions

import (
	"bombquest/internal/domain"
	"bombquest/internal/engine/handlers"
	"bombquest/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleBomb ставит бомбу под игроком. Без запаса или на занятой клетке - ничего.
func HandleBomb(ctx handlers.Context, _ domain.ActionType) (handlers.Result, error) {
	p := ctx.Game.Player

	if ctx.Game.BombAt(p.Pos) != nil {
		return handlers.EmptyResult(), nil
	}

	b, ok := p.PlaceBomb(ctx.Tick, ctx.Game.Rules.BombFuse)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "action_bomb",
			"tick":      ctx.Tick,
		}).Debug("No bombs left")
		return handlers.EmptyResult(), nil
	}

	if ctx.PlaceBomb != nil {
		ctx.PlaceBomb(b)
	} else {
		ctx.Game.AddBomb(b)
	}
	return handlers.EmptyResult(), nil
}
