package models

import "time"

// SuspiciousEvent — anomalie signalée sur un produit. Le score vient du
// Scorer injecté (aléatoire uniforme par défaut, en attendant un vrai
// modèle de détection).
type SuspiciousEvent struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}
