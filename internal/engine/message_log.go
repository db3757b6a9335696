package engine

import (
	"bombquest/pkg/api"
	"bombquest/pkg/logger"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет сообщение в историю игры (ограничена MessageLogSize)
func (e *Engine) AddLog(text, logType string) {
	e.logSeq++
	e.logs = append(e.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d_%d", e.game.Level, e.game.Tick, e.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if limit := e.cfg.MessageLogSize; limit > 0 && len(e.logs) > limit {
		e.logs = append(e.logs[:0], e.logs[len(e.logs)-limit:]...)
	}

	logger.Log.WithFields(logrus.Fields{
		"session":   e.session,
		"level":     e.game.Level,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// Logs возвращает копию истории сообщений
func (e *Engine) Logs() []api.LogEntry {
	logsCopy := make([]api.LogEntry, len(e.logs))
	copy(logsCopy, e.logs)
	return logsCopy
}
