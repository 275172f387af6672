package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kirana_back_end/internal/cache"
	"kirana_back_end/internal/database"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// AlertsWebSocket pousse en temps réel les alertes stock faible et les
// événements suspects au tableau de bord magasin, via le canal Redis.
func (a *API) AlertsWebSocket(c *gin.Context) {
	if database.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Flux d'alertes indisponible sans Redis"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()
	pubsub := database.Redis.Subscribe(ctx, cache.AlertsChannel)
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Flux d'alertes activé",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				continue
			}
			if err := conn.WriteJSON(payload); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
