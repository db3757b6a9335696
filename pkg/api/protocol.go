package api

// --- СЕРВЕР -> ЗРИТЕЛЬ ---

// Snapshot это корневой объект, который сервер отправляет зрителям.
// Полный "снимок" текущего уровня. Зритель ничего не может отправить в игру.
type Snapshot struct {
	// Type тип сообщения: "UPDATE" или "END".
	Type string `json:"type"`

	// Session ID игровой сессии (меняется при каждом запуске бинарника).
	Session string `json:"session"`

	// Tick номер тика движка.
	Tick int64 `json:"tick"`

	// Level номер текущего уровня, начиная с 1.
	Level int `json:"level"`

	// State состояние движка: RUNNING, WON, LOST, EXITED.
	State string `json:"state"`

	// Grid размеры карты уровня.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map все непустые клетки уровня.
	Map []TileView `json:"map,omitempty"`

	// Entities игрок, монстры и бомбы.
	Entities []EntityView `json:"entities,omitempty"`

	// Player характеристики игрока.
	Player *PlayerView `json:"player,omitempty"`

	// Levels номера уровней в памяти сессии.
	Levels []int `json:"levels,omitempty"`

	// Logs последние сообщения игры.
	Logs []LogEntry `json:"logs,omitempty"`

	// Fuses фитили бомб в порядке взрыва.
	Fuses []FuseView `json:"fuses,omitempty"`
}

// GridMeta содержит общие размеры карты
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView - одна непустая клетка карты
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Kind имя декора (Stone, Key, DoorNextClosed...)
	Kind string `json:"kind"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// EntityView это DTO для подвижной сущности.
type EntityView struct {
	Type string `json:"type"` // PLAYER, MONSTER, BOMB

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Facing направление взгляда (N, E, S, W). Для бомб пусто.
	Facing string `json:"facing,omitempty"`

	// ExpiresAt тик взрыва (только для бомб)
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// PlayerView - характеристики игрока
type PlayerView struct {
	Lives     int  `json:"lives"`
	Keys      int  `json:"keys"`
	Bombs     int  `json:"bombs"`
	BombRange int  `json:"bombRange"`
	IsDead    bool `json:"isDead"`
	IsWinner  bool `json:"isWinner"`
}

// FuseView - одна бомба в очереди фитилей
type FuseView struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	ExpiresAt int64  `json:"expiresAt"`
	Seq       uint64 `json:"seq"` // порядок установки
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, LEVEL, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}
