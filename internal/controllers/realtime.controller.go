package controllers

import (
	"log"
	"net/http"
	"time"

	"nutrialarm/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	hub        *services.RealtimeHub
	reconciler *services.Reconciler
	nutrition  *services.NutritionService
}

func NewRealtimeController(hub *services.RealtimeHub, reconciler *services.Reconciler, nutrition *services.NutritionService) *RealtimeController {
	return &RealtimeController{hub: hub, reconciler: reconciler, nutrition: nutrition}
}

// Subscribe upgrades the connection and keeps it registered until the client
// goes away. The first frame is a snapshot so the UI can render immediately.
func (rc *RealtimeController) Subscribe(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed for user %s: %v", userID, err)
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	rc.hub.Register(client)
	defer rc.hub.Unregister(client)

	rc.sendSnapshot(client)

	// Read loop exists only to notice the close; clients never send data.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (rc *RealtimeController) sendSnapshot(client *services.WSClient) {
	now := time.Now()
	info, err := rc.reconciler.NextMealInfo(client.UserID, now)
	if err != nil {
		return
	}
	summary, err := rc.nutrition.DailySummary(client.UserID, now.Format("2006-01-02"))
	if err != nil {
		return
	}
	rc.hub.Broadcast(client.UserID, gin.H{
		"kind":      "state.refresh",
		"next_meal": info,
		"summary":   summary,
	})
}
