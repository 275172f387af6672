package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"kirana_back_end/internal/database"
	"kirana_back_end/internal/store"
)

// SnapshotKey — clé fixe sous laquelle l'état complet du store est
// persisté, reprise telle quelle de l'application d'origine
const SnapshotKey = "retail-store"

// SaveSnapshot sérialise le snapshot sous la clé fixe. Best-effort : sans
// Redis configuré, c'est un no-op silencieux.
func SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	if database.Redis == nil {
		return nil
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encodage snapshot: %w", err)
	}

	// Pas de TTL : le snapshot vit tant qu'on ne l'écrase pas
	return database.Redis.Set(ctx, SnapshotKey, data, 0).Err()
}

// LoadSnapshot relit le snapshot persisté. (nil, nil) si rien n'est
// stocké ou si Redis n'est pas configuré.
func LoadSnapshot(ctx context.Context) (*store.Snapshot, error) {
	if database.Redis == nil {
		return nil, nil
	}

	data, err := database.Redis.Get(ctx, SnapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap store.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("décodage snapshot: %w", err)
	}
	return &snap, nil
}
