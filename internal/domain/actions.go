package domain

import "strings"

// ActionType - внутренний идентификатор действия игрока за тик
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionExit
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveEast
	ActionMoveWest
	ActionBomb
	ActionKey
)

// Маппинг для конвертации конфиг/строка -> Domain
var actionStringToCmd = map[string]ActionType{
	"EXIT":   ActionExit,
	"MOVE_N": ActionMoveNorth,
	"MOVE_S": ActionMoveSouth,
	"MOVE_E": ActionMoveEast,
	"MOVE_W": ActionMoveWest,
	"BOMB":   ActionBomb,
	"KEY":    ActionKey,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionExit:      "EXIT",
	ActionMoveNorth: "MOVE_N",
	ActionMoveSouth: "MOVE_S",
	ActionMoveEast:  "MOVE_E",
	ActionMoveWest:  "MOVE_W",
	ActionBomb:      "BOMB",
	ActionKey:       "KEY",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Direction возвращает направление для действий движения
func (a ActionType) Direction() (Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return North, true
	case ActionMoveSouth:
		return South, true
	case ActionMoveEast:
		return East, true
	case ActionMoveWest:
		return West, true
	}
	return North, false
}
