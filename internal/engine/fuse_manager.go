package engine

import (
	"bombquest/internal/domain"
	"bombquest/pkg/api"
	"bombquest/pkg/logger"
	"container/heap"
	"sort"

	"github.com/sirupsen/logrus"
)

// FuseManager следит за фитилями всех бомб уровня.
type FuseManager struct {
	queue   FuseQueue
	itemMap map[*domain.Bomb]*FuseItem
	seq     uint64
}

func NewFuseManager() *FuseManager {
	return &FuseManager{
		queue:   make(FuseQueue, 0),
		itemMap: make(map[*domain.Bomb]*FuseItem),
	}
}

// Add registers a bomb; its priority is the tick the fuse burns out.
func (fm *FuseManager) Add(b *domain.Bomb) {
	if _, ok := fm.itemMap[b]; ok {
		return
	}
	fm.seq++
	item := &FuseItem{
		Value:    b,
		Priority: b.ExpiresAt(),
		Seq:      fm.seq,
	}

	heap.Push(&fm.queue, item)
	fm.itemMap[b] = item

	logger.Log.WithFields(logrus.Fields{
		"component": "fuse_manager",
		"pos":       b.Pos,
		"expires":   item.Priority,
	}).Debug("Bomb added to FuseManager")
}

// PeekNext returns the bomb that explodes next, without removing it.
func (fm *FuseManager) PeekNext() *FuseItem {
	if fm.queue.Len() == 0 {
		return nil
	}
	return fm.queue[0]
}

// PopExpired removes and returns every bomb whose fuse burned out by tick,
// ordered by expiry tick, then by placement.
func (fm *FuseManager) PopExpired(tick int64) []*domain.Bomb {
	var expired []*domain.Bomb
	for next := fm.PeekNext(); next != nil && next.Priority <= tick; next = fm.PeekNext() {
		item := heap.Pop(&fm.queue).(*FuseItem)
		delete(fm.itemMap, item.Value)
		expired = append(expired, item.Value)
	}
	return expired
}

// Remove removes a bomb from the fuse system (e.g. chain detonation).
func (fm *FuseManager) Remove(b *domain.Bomb) {
	if item, ok := fm.itemMap[b]; ok {
		heap.Remove(&fm.queue, item.Index)
		delete(fm.itemMap, b)
	}
}

// Clear забывает все фитили (смена уровня)
func (fm *FuseManager) Clear() {
	fm.queue = make(FuseQueue, 0)
	fm.itemMap = make(map[*domain.Bomb]*FuseItem)
}

func (fm *FuseManager) Len() int {
	return fm.queue.Len()
}

// DebugDump возвращает фитили в порядке взрыва (для снимков зрителям)
func (fm *FuseManager) DebugDump() []api.FuseView {
	// Пустой слайс, а не nil: в JSON будет "[]", а не "null"
	result := make([]api.FuseView, 0, fm.queue.Len())

	items := make([]*FuseItem, len(fm.queue))
	copy(items, fm.queue)
	sort.Slice(items, func(i, j int) bool { return fm.queue.less(items[i], items[j]) })

	for _, item := range items {
		result = append(result, api.FuseView{
			X:         item.Value.Pos.X,
			Y:         item.Value.Pos.Y,
			ExpiresAt: item.Priority,
			Seq:       item.Seq,
		})
	}
	return result
}
