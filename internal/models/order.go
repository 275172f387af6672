package models

import "time"

// Statuts de livraison — la séquence est strictement avant-only :
// Placed → Packed → OTD → Delivered
const (
	StatusPlaced    = "Placed"
	StatusPacked    = "Packed"
	StatusOTD       = "OTD"
	StatusDelivered = "Delivered"
)

type Order struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Items             []CartItem `json:"items"`
	Total             float64    `json:"total"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	DeliveryAddress   string     `json:"deliveryAddress"`
	LoyaltyPointsUsed int        `json:"loyaltyPointsUsed"`
}
