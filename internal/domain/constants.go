package domain

// Стартовые параметры игрока
const (
	DefaultPlayerLives = 3
	DefaultBombs       = 1
	DefaultBombRange   = 1

	MinBombs     = 1
	MinBombRange = 1
)
