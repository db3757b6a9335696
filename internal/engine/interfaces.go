package engine

import (
	"bombquest/internal/domain"
	"bombquest/pkg/api"
)

// LevelLoader загружает уровень по номеру (с 1).
// Ошибки: domain.ErrLevelNotFound, domain.ErrLevelParse.
type LevelLoader interface {
	LoadWorld(level int) (*domain.World, error)
}

// LevelChanger расставляет игрока и монстров после смены game.World.
// Вызывается, пока флаг перехода еще взведен (IsBacking доступен).
type LevelChanger interface {
	ChangeLevel(g *domain.Game)
}

// Input - флаги нажатий, накопленные с прошлого тика
type Input interface {
	IsExit() bool
	IsMoveNorth() bool
	IsMoveSouth() bool
	IsMoveEast() bool
	IsMoveWest() bool
	IsBomb() bool
	IsKey() bool
	Clear()
}

// Sprite - отображение одного объекта на сцене
type Sprite interface {
	Render()
	Remove()
}

// SpriteFactory создает спрайты на текущей сцене.
// Спрайты игрока, монстров и бомб читают позицию из сущности при каждом Render.
type SpriteFactory interface {
	ResetScene(dim domain.Dimension)
	CreateDecor(pos domain.Position, decor domain.Decor) Sprite
	CreatePlayer(p *domain.Player) Sprite
	CreateMonster(m *domain.Monster) Sprite
	CreateBomb(b *domain.Bomb) Sprite
	CreateExplosion(pos domain.Position) Sprite
}

// Outcome - чем закончилась игра
type Outcome uint8

const (
	OutcomeLost Outcome = iota
	OutcomeWon
)

func (o Outcome) String() string {
	if o == OutcomeWon {
		return "WON"
	}
	return "LOST"
}

// StatusDisplay - строка состояния и финальное сообщение
type StatusDisplay interface {
	Update(g *domain.Game)
	ShowMessage(text string, outcome Outcome)
}

// Observer получает снимки состояния (зрители)
type Observer interface {
	Publish(s api.Snapshot)
}
