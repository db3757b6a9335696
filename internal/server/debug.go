package server

import (
	"bombquest/internal/network"
	"encoding/json"
	"net/http"
)

// DebugHandler отдает последнее опубликованное состояние игры
type DebugHandler struct {
	Hub *network.Broadcaster
}

func NewDebugHandler(hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Hub: hub}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/levels", h.handleLevels)
	mux.HandleFunc("/debug/snapshot", h.handleSnapshot)
	mux.HandleFunc("/debug/spectators", h.handleSpectators)
	mux.HandleFunc("/debug/fuses", h.handleFuses)
}

// /debug/levels - текущий уровень и уровни в памяти сессии
func (h *DebugHandler) handleLevels(w http.ResponseWriter, r *http.Request) {
	type LevelsSummary struct {
		Session string `json:"session"`
		Current int    `json:"current"`
		Cached  []int  `json:"cached"`
		Tick    int64  `json:"tick"`
		State   string `json:"state"`
	}

	s, ok := h.Hub.Last()
	if !ok {
		http.Error(w, "No snapshot published yet", http.StatusNotFound)
		return
	}

	writeJSON(w, LevelsSummary{
		Session: s.Session,
		Current: s.Level,
		Cached:  s.Levels,
		Tick:    s.Tick,
		State:   s.State,
	})
}

// /debug/snapshot - последний снимок целиком
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Hub.Last()
	if !ok {
		http.Error(w, "No snapshot published yet", http.StatusNotFound)
		return
	}
	writeJSON(w, s)
}

// /debug/fuses - очередь фитилей из последнего снимка
func (h *DebugHandler) handleFuses(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Hub.Last()
	if !ok {
		http.Error(w, "No snapshot published yet", http.StatusNotFound)
		return
	}
	if len(s.Fuses) == 0 {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, s.Fuses)
}

// /debug/spectators - сколько зрителей подключено
func (h *DebugHandler) handleSpectators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"count":   h.Hub.SubscriberCount(),
		"dropped": h.Hub.Dropped(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
