package engine

// State - состояние движка
type State uint8

const (
	StateRunning State = iota
	StateTransitioning
	StateLost
	StateWon
	StateExited
)

var stateToString = map[State]string{
	StateRunning:       "RUNNING",
	StateTransitioning: "TRANSITIONING",
	StateLost:          "LOST",
	StateWon:           "WON",
	StateExited:        "EXITED",
}

func (s State) String() string {
	if val, ok := stateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsEnded - игра закончена, ждем только выхода
func (s State) IsEnded() bool {
	return s == StateLost || s == StateWon
}
