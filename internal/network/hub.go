package network

import (
	"bombquest/pkg/api"
	"bombquest/pkg/logger"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Broadcaster занимается только рассылкой снимков зрителям
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID зрителя -> личный канал
	subscribers map[string]chan api.Snapshot

	last    api.Snapshot
	hasLast bool
	dropped uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register создает личный канал для нового зрителя.
// Если снимок уже есть, он сразу кладется в канал (первая отрисовка).
func (b *Broadcaster) Register() (string, chan api.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan api.Snapshot, 16)
	if b.hasLast {
		ch <- b.last
	}
	b.subscribers[id] = ch

	logger.Log.WithFields(logrus.Fields{
		"component":  "broadcaster",
		"spectator":  id,
		"spectators": len(b.subscribers),
	}).Info("Spectator registered")
	return id, ch
}

// Unregister удаляет зрителя и закрывает его канал
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Publish запоминает снимок и рассылает его всем.
// Медленный зритель пропускает снимки, игра его не ждет.
func (b *Broadcaster) Publish(s api.Snapshot) {
	if err := s.Validate(); err != nil {
		logger.Log.WithField("component", "broadcaster").WithError(err).Warn("Invalid snapshot dropped")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = s
	b.hasLast = true
	for _, ch := range b.subscribers {
		select {
		case ch <- s:
		default:
			b.dropped++
		}
	}
}

// Last возвращает последний опубликованный снимок
func (b *Broadcaster) Last() (api.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last, b.hasLast
}

// HasSubscriber проверяет, подключен ли зритель
func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных зрителей.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped - сколько снимков не влезло в каналы зрителей
func (b *Broadcaster) Dropped() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}
