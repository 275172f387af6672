package models

// InventoryEntry — forme sérialisable de l'inventaire (une map en mémoire
// n'a pas de contrat d'encodage stable, on persiste une liste clé/valeur).
type InventoryEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// StockMovement — trace d'un mouvement de stock lors d'une vente POS
type StockMovement struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	PrevStock int    `json:"prevStock"`
	NewStock  int    `json:"newStock"`
}

// AuditDiscrepancy — ligne du rapport d'audit de stock : écart entre
// comptage physique et stock système pour un produit saisi
type AuditDiscrepancy struct {
	ProductID     string `json:"productId"`
	SystemStock   int    `json:"systemStock"`
	PhysicalCount int    `json:"physicalCount"`
	Discrepancy   int    `json:"discrepancy"`
}

// SaleReceipt — résultat d'un encaissement POS
type SaleReceipt struct {
	Items          []CartItem      `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	Tax            float64         `json:"tax"`
	Total          float64         `json:"total"`
	PointsEarned   int             `json:"pointsEarned"`
	PointsRedeemed int             `json:"pointsRedeemed"`
	Movements      []StockMovement `json:"movements"`
}
