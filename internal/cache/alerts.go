package cache

import (
	"context"
	"encoding/json"
	"log"

	"kirana_back_end/internal/database"
)

// AlertsChannel — canal pub/sub derrière le websocket d'alertes
const AlertsChannel = "alerts:feed"

// PublishAlert pousse une alerte (stock faible, événement suspect) sur le
// canal. Best-effort : une alerte perdue n'est jamais une erreur métier.
func PublishAlert(ctx context.Context, payload interface{}) {
	if database.Redis == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("⚠️ Encodage alerte impossible: %v", err)
		return
	}
	if err := database.Redis.Publish(ctx, AlertsChannel, data).Err(); err != nil {
		log.Printf("⚠️ Publication alerte impossible: %v", err)
	}
}
