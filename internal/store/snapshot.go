package store

import (
	"fmt"
	"sort"

	"kirana_back_end/internal/models"
)

// SnapshotVersion — version du contrat d'encodage. À incrémenter si la
// forme du snapshot change.
const SnapshotVersion = 1

// Snapshot — état sérialisable du conteneur. L'utilisateur courant et le
// catalogue sont exclus : la session se rejoue au login, le catalogue est
// fourni au démarrage. L'inventaire est encodé en liste clé/valeur triée,
// une map brute n'a pas d'ordre stable.
type Snapshot struct {
	Version          int                      `json:"version"`
	Cart             []models.CartItem        `json:"cart"`
	Orders           []models.Order           `json:"orders"`
	LoyaltyPoints    int                      `json:"loyaltyPoints"`
	Inventory        []models.InventoryEntry  `json:"inventory"`
	LowStockAlerts   []string                 `json:"lowStockAlerts"`
	SuspiciousEvents []models.SuspiciousEvent `json:"suspiciousEvents"`
}

// Snapshot capture l'état courant.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := make([]models.InventoryEntry, 0, len(s.inventory))
	for id, qty := range s.inventory {
		inv = append(inv, models.InventoryEntry{ProductID: id, Quantity: qty})
	}
	sort.Slice(inv, func(a, b int) bool { return inv[a].ProductID < inv[b].ProductID })

	snap := Snapshot{
		Version:          SnapshotVersion,
		Cart:             make([]models.CartItem, len(s.cart)),
		Orders:           make([]models.Order, len(s.orders)),
		LoyaltyPoints:    s.loyaltyPoints,
		Inventory:        inv,
		LowStockAlerts:   make([]string, len(s.lowStockAlerts)),
		SuspiciousEvents: make([]models.SuspiciousEvent, len(s.suspiciousEvents)),
	}
	copy(snap.Cart, s.cart)
	copy(snap.Orders, s.orders)
	copy(snap.LowStockAlerts, s.lowStockAlerts)
	copy(snap.SuspiciousEvents, s.suspiciousEvents)
	return snap
}

// Restore recharge un snapshot. Refuse les versions inconnues plutôt que
// de deviner une migration.
func (s *Store) Restore(snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("version de snapshot inconnue: %d", snap.Version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = append([]models.CartItem(nil), snap.Cart...)
	s.orders = append([]models.Order(nil), snap.Orders...)
	s.loyaltyPoints = snap.LoyaltyPoints
	s.inventory = make(map[string]int, len(snap.Inventory))
	for _, e := range snap.Inventory {
		s.inventory[e.ProductID] = e.Quantity
	}
	s.lowStockAlerts = append([]string(nil), snap.LowStockAlerts...)
	s.suspiciousEvents = append([]models.SuspiciousEvent(nil), snap.SuspiciousEvents...)
	return nil
}
