package terminal

import (
	"bombquest/internal/domain"
	"bombquest/pkg/logger"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Input копит нажатия между тиками. Движок читает флаги и вызывает Clear.
// Первое чтение за тик забирает накопленные нажатия в кадр одним захватом
// мьютекса. Нажатие, пришедшее после этого, попадет в следующий тик, а не потеряется.
type Input struct {
	mu       sync.Mutex
	bindings map[string]domain.ActionType
	pressed  map[domain.ActionType]bool // копятся из горутины опроса
	frame    map[domain.ActionType]bool // видны движку в текущем тике
	latched  bool
	log      *logrus.Entry
}

func NewInput(bindings map[string]domain.ActionType) *Input {
	return &Input{
		bindings: bindings,
		pressed:  make(map[domain.ActionType]bool),
		frame:    make(map[domain.ActionType]bool),
		log:      logger.Log.WithField("component", "terminal_input"),
	}
}

// KeyName переводит событие tcell в имя клавиши из конфига: "up", "space", "w", ...
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// HandleEvent отмечает действие, привязанное к клавише
func (in *Input) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	name := KeyName(key)

	action, bound := in.bindings[name]
	if name == "ctrl+c" {
		action, bound = domain.ActionExit, true
	}
	if !bound {
		return
	}

	in.mu.Lock()
	in.pressed[action] = true
	in.mu.Unlock()
	in.log.WithFields(logrus.Fields{"key": name, "action": action.String()}).Debug("Key pressed")
}

// Listen читает события экрана, пока он не закрыт (PollEvent вернет nil)
func (in *Input) Listen(s tcell.Screen) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
		default:
			in.HandleEvent(e)
		}
	}
}

func (in *Input) is(a domain.ActionType) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.latched {
		in.frame, in.pressed = in.pressed, in.frame
		clear(in.pressed)
		in.latched = true
	}
	return in.frame[a]
}

func (in *Input) IsExit() bool      { return in.is(domain.ActionExit) }
func (in *Input) IsMoveNorth() bool { return in.is(domain.ActionMoveNorth) }
func (in *Input) IsMoveSouth() bool { return in.is(domain.ActionMoveSouth) }
func (in *Input) IsMoveEast() bool  { return in.is(domain.ActionMoveEast) }
func (in *Input) IsMoveWest() bool  { return in.is(domain.ActionMoveWest) }
func (in *Input) IsBomb() bool      { return in.is(domain.ActionBomb) }
func (in *Input) IsKey() bool       { return in.is(domain.ActionKey) }

// Clear сбрасывает кадр текущего тика. Нажатия после захвата кадра сохраняются.
func (in *Input) Clear() {
	in.mu.Lock()
	defer in.mu.Unlock()
	clear(in.frame)
	in.latched = false
}
