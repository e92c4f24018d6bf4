package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID string
	Conn   *websocket.Conn
}

// RealtimeHub pushes UI-visible state to subscribed clients. A single writer
// broadcasts per user; clients come and go with their sessions.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

func (h *RealtimeHub) activeUserIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// StartRefreshLoop re-publishes next-meal and daily progress for every
// connected user on a fixed cadence. Refresh is time-based, not event-based;
// the loop stops when ctx is cancelled.
func (h *RealtimeHub) StartRefreshLoop(ctx context.Context, reconciler *Reconciler, nutrition *NutritionService, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.refreshAll(reconciler, nutrition)
			}
		}
	}()
}

func (h *RealtimeHub) refreshAll(reconciler *Reconciler, nutrition *NutritionService) {
	now := time.Now()
	today := now.Format("2006-01-02")
	for _, userID := range h.activeUserIDs() {
		next, err := reconciler.NextMealInfo(userID, now)
		if err != nil {
			log.Printf("Realtime refresh: next meal for user %s: %v", userID, err)
			continue
		}
		summary, err := nutrition.DailySummary(userID, today)
		if err != nil {
			log.Printf("Realtime refresh: daily summary for user %s: %v", userID, err)
			continue
		}
		h.Broadcast(userID, map[string]any{
			"kind":      "state.refresh",
			"next_meal": next,
			"summary":   summary,
		})
	}
}
