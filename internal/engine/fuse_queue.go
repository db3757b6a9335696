package engine

import (
	"bombquest/internal/domain"
)

// FuseItem обертка бомбы для очереди приоритетов
type FuseItem struct {
	Value    *domain.Bomb // Сама бомба
	Priority int64        // Тик взрыва. Чем меньше, тем раньше.
	Seq      uint64       // Порядок установки, разрешает равные приоритеты
	Index    int          // Индекс в куче (нужен для Remove)
}

// FuseQueue реализует heap.Interface и хранит FuseItems
type FuseQueue []*FuseItem

func (pq FuseQueue) Len() int { return len(pq) }

func (pq FuseQueue) Less(i, j int) bool {
	return pq.less(pq[i], pq[j])
}

// less: раньше взрыв, при равенстве - раньше установка
func (FuseQueue) less(a, b *FuseItem) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Seq < b.Seq
}

func (pq FuseQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *FuseQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*FuseItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *FuseQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}
