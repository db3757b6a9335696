package engine

import (
	"bombquest/internal/domain"
	"bombquest/internal/engine/handlers"
	"bombquest/internal/engine/handlers/actions"
	"bombquest/internal/systems"
	"bombquest/pkg/api"
	"bombquest/pkg/logger"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Deps - внешние соавторы движка
type Deps struct {
	Loader  LevelLoader
	Changer LevelChanger
	Input   Input
	Sprites SpriteFactory
	Status  StatusDisplay
}

// Engine - машина состояний игры. Все методы вызываются из одной горутины.
type Engine struct {
	cfg  Config
	game *domain.Game

	loader  LevelLoader
	changer LevelChanger
	input   Input
	status  StatusDisplay

	handlers  map[domain.ActionType]handlers.HandlerFunc
	fuses     *FuseManager
	visuals   *visualLayer
	observers []Observer

	state        State
	messageShown bool
	err          error // фатальная ошибка; дальше Tick возвращает ее же

	session string
	logs    []api.LogEntry
	logSeq  uint64
	log     *logrus.Entry
}

// New загружает стартовый уровень и собирает сцену.
// Ошибка загрузки оборачивается в domain.ErrLevelLoad.
func New(cfg Config, deps Deps) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Loader == nil || deps.Changer == nil || deps.Input == nil || deps.Sprites == nil || deps.Status == nil {
		return nil, errors.New("engine: all dependencies are required")
	}

	session := uuid.NewString()
	log := logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"session":   session,
	})

	world, err := deps.Loader.LoadWorld(cfg.StartLevel)
	if err != nil {
		return nil, fmt.Errorf("load start level %d: %w: %w", cfg.StartLevel, domain.ErrLevelLoad, err)
	}

	player := domain.NewPlayer(world.Start)
	game := domain.NewGame(world, player, cfg.Rules(), rand.New(rand.NewSource(cfg.Seed)))

	e := &Engine{
		cfg:      cfg,
		game:     game,
		loader:   deps.Loader,
		changer:  deps.Changer,
		input:    deps.Input,
		status:   deps.Status,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		fuses:    NewFuseManager(),
		visuals:  newVisualLayer(deps.Sprites),
		state:    StateRunning,
		session:  session,
		log:      log,
	}
	actions.Register(e.handlers)

	e.changer.ChangeLevel(game)
	world.SetChanged(false)
	e.visuals.reset(game)

	log.WithFields(logrus.Fields{
		"level":    world.Level,
		"name":     world.Name,
		"monsters": len(game.Monsters),
		"seed":     cfg.Seed,
	}).Info("Engine started")
	e.AddLog(fmt.Sprintf("Уровень %d: %s", world.Level, world.Name), "LEVEL")

	return e, nil
}

// AddObserver подписывает получателя снимков
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) Game() *domain.Game { return e.game }

func (e *Engine) State() State { return e.state }

func (e *Engine) Session() string { return e.session }

// Fuses - очередь фитилей (для отладки)
func (e *Engine) Fuses() *FuseManager { return e.fuses }

// Run крутит Tick с частотой TickRate до выхода, отмены ctx или фатальной ошибки.
// Выход игрока - nil.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.cfg.TickDuration())
	defer ticker.Stop()

	e.log.WithField("tickRate", e.cfg.TickRate).Info("Game loop started")

	for {
		select {
		case <-ctx.Done():
			e.log.Info("Game loop cancelled")
			return ctx.Err()
		case <-ticker.C:
			if err := e.Tick(); err != nil {
				return err
			}
			if e.state == StateExited {
				e.log.Info("Game loop stopped by player")
				return nil
			}
		}
	}
}

// Tick - один шаг игры
func (e *Engine) Tick() error {
	if e.err != nil {
		return e.err
	}
	if e.state == StateExited {
		return nil
	}

	g := e.game
	g.Tick++
	tick := g.Tick

	pending := e.drainInput()

	if e.state.IsEnded() {
		for _, a := range pending {
			if a == domain.ActionExit {
				e.exit()
			}
		}
		return nil
	}

	for _, a := range pending {
		if a == domain.ActionExit {
			e.exit()
			return nil
		}
		e.dispatch(a, tick)
	}

	g.Player.Update(g, tick)
	for _, m := range g.Monsters {
		if m.Alive {
			m.Update(g, tick)
		}
	}
	e.updateBombs(tick)
	e.visuals.expireExplosions(tick)

	if g.World.HasChanged() {
		e.visuals.rebuildDecor(g.World)
		g.World.SetChanged(false)
	}

	if g.IsChanged() {
		e.state = StateTransitioning
		if err := e.transition(); err != nil {
			e.err = err
			e.state = StateExited
			e.log.WithError(err).Error("Level transition failed")
			return err
		}
		e.state = StateRunning
	}

	// Проверка после перехода: игрок мог погибнуть в том же тике, что и вошел в дверь
	if g.Player.IsTerminal() {
		if g.Player.Alive {
			e.end(StateWon)
		} else {
			e.end(StateLost)
		}
	}

	e.visuals.render(g)
	e.status.Update(g)

	if e.cfg.SnapshotEvery > 0 && tick%e.cfg.SnapshotEvery == 0 {
		e.publish()
	}
	return nil
}

// drainInput снимает флаги ввода в фиксированном порядке и сбрасывает их
func (e *Engine) drainInput() []domain.ActionType {
	var pending []domain.ActionType
	in := e.input
	if in.IsExit() {
		pending = append(pending, domain.ActionExit)
	}
	if in.IsMoveNorth() {
		pending = append(pending, domain.ActionMoveNorth)
	}
	if in.IsMoveSouth() {
		pending = append(pending, domain.ActionMoveSouth)
	}
	if in.IsMoveEast() {
		pending = append(pending, domain.ActionMoveEast)
	}
	if in.IsMoveWest() {
		pending = append(pending, domain.ActionMoveWest)
	}
	if in.IsBomb() {
		pending = append(pending, domain.ActionBomb)
	}
	if in.IsKey() {
		pending = append(pending, domain.ActionKey)
	}
	in.Clear()
	return pending
}

func (e *Engine) dispatch(a domain.ActionType, tick int64) {
	handler, ok := e.handlers[a]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Game:      e.game,
		Tick:      tick,
		PlaceBomb: e.placeBomb,
	}

	result, err := handler(ctx, a)
	if err != nil {
		e.log.WithError(err).WithField("action", a.String()).Warn("Action failed")
		return
	}
	if result.Msg != "" {
		e.AddLog(result.Msg, result.MsgType)
	}
}

func (e *Engine) placeBomb(b *domain.Bomb) {
	e.game.AddBomb(b)
	e.fuses.Add(b)
	e.visuals.addBomb(b)
}

// updateBombs взрывает бомбы с догоревшим фитилем (и цепочки от них)
func (e *Engine) updateBombs(tick int64) {
	g := e.game
	for _, b := range e.fuses.PopExpired(tick) {
		if b.Exploded || !b.Update(tick) {
			continue
		}

		res := systems.Detonate(g, b, tick)
		for _, exploded := range res.Bombs {
			e.fuses.Remove(exploded)
			g.RemoveBomb(exploded)
			e.visuals.removeBomb(exploded)
			g.Player.Bombs++
		}
		for _, p := range res.Cells {
			e.visuals.addExplosion(p, tick+e.cfg.ExplosionTicks)
		}
		e.visuals.removeMonsters(g.RemoveDeadMonsters())

		if n := len(res.Killed); n > 0 {
			e.AddLog(fmt.Sprintf("Уничтожено монстров: %d.", n), "COMBAT")
		}
		if res.PlayerHit {
			e.AddLog("Вас задело взрывом!", "COMBAT")
		}
	}
}

// transition меняет уровень внутри одного тика.
// Цель < 1 - ничего не делаем. Ошибка загрузки фатальна.
func (e *Engine) transition() error {
	g := e.game
	target := g.TargetLevel()
	if target < 1 {
		e.log.WithField("target", target).Warn("Level transition below 1 ignored")
		g.ClearLevelChange()
		return nil
	}

	g.Levels.Put(g.Level, g.World)

	// Неразорвавшиеся бомбы пропадают вместе с уровнем, запас игроку возвращаем
	g.Player.Bombs += len(g.Bombs)
	e.visuals.clearEntities()
	g.Monsters = nil
	g.Bombs = nil
	e.fuses.Clear()

	world, cached := g.Levels.Get(target)
	if !cached {
		loaded, err := e.loader.LoadWorld(target)
		if err != nil {
			return fmt.Errorf("load level %d: %w: %w", target, domain.ErrLevelLoad, err)
		}
		world = loaded
		g.Levels.Put(target, world)
	}

	from := g.Level
	g.Level = target
	g.World = world

	e.changer.ChangeLevel(g)
	g.ClearLevelChange()
	world.SetChanged(false)
	e.visuals.reset(g)

	e.log.WithFields(logrus.Fields{
		"from":     from,
		"to":       target,
		"cached":   cached,
		"monsters": len(g.Monsters),
	}).Info("Level changed")
	e.AddLog(fmt.Sprintf("Уровень %d: %s", target, world.Name), "LEVEL")
	e.publish()
	return nil
}

// end переводит игру в финальное состояние; сообщение показывается один раз
func (e *Engine) end(state State) {
	e.state = state
	if e.messageShown {
		return
	}
	e.messageShown = true

	text, outcome := "Вы погибли. Игра окончена.", OutcomeLost
	if state == StateWon {
		text, outcome = "Принцесса спасена! Победа!", OutcomeWon
	}
	e.status.ShowMessage(text, outcome)
	e.AddLog(text, "INFO")
	e.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"level":   e.game.Level,
		"tick":    e.game.Tick,
	}).Info("Game ended")
	e.publish()
}

func (e *Engine) exit() {
	e.state = StateExited
	e.log.WithField("tick", e.game.Tick).Info("Exit requested")
	e.publish()
}

func (e *Engine) publish() {
	if len(e.observers) == 0 {
		return
	}
	s := e.BuildSnapshot()
	for _, o := range e.observers {
		o.Publish(s)
	}
}
