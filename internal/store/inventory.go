package store

import (
	"math"
	"sort"

	"kirana_back_end/internal/models"
)

const (
	// Seuil fixe d'alerte stock faible
	LowStockThreshold = 10

	// 1 point gagné par tranche de 10 unités monétaires du total encaissé
	// (après TVA et remise)
	earnRateDivisor = 10
)

// UpdateInventory fixe la quantité absolue en stock (écrasement, pas de
// delta). Les quantités négatives sont refusées.
func (s *Store) UpdateInventory(productID string, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[productID] = quantity
	return nil
}

// InventoryQuantity — lecture de la quantité en main d'un produit.
func (s *Store) InventoryQuantity(productID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty, ok := s.inventory[productID]
	return qty, ok
}

// Inventory retourne une copie de l'inventaire complet.
func (s *Store) Inventory() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.inventory))
	for id, qty := range s.inventory {
		out[id] = qty
	}
	return out
}

// CheckLowStock retourne exactement les produits dont la quantité est
// strictement sous le seuil, et rafraîchit la liste d'alertes en cache.
// C'est son seul effet de bord.
func (s *Store) CheckLowStock() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var low []string
	for id, qty := range s.inventory {
		if qty < LowStockThreshold {
			low = append(low, id)
		}
	}
	sort.Strings(low)
	s.lowStockAlerts = low

	out := make([]string, len(low))
	copy(out, low)
	return out
}

// LowStockAlerts — dernière liste d'alertes calculée par CheckLowStock.
func (s *Store) LowStockAlerts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lowStockAlerts))
	copy(out, s.lowStockAlerts)
	return out
}

// RecordSale — encaissement POS. Contrairement au panier client, les
// quantités demandées sont validées contre le stock en main : une vente
// qui ferait passer un stock en négatif est refusée en bloc. Débit du
// stock, débit gardé des points échangés puis crédit des points gagnés
// (floor(total/10)) forment une transition atomique.
func (s *Store) RecordSale(items []models.CartItem, pointsRedeemed int) (*models.SaleReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	// Plusieurs lignes peuvent porter sur le même produit : le contrôle de
	// stock se fait sur le cumul demandé, pas ligne par ligne
	requested := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrNegativeQuantity
		}
		requested[item.ProductID] += item.Quantity
	}
	for id, qty := range requested {
		if s.inventory[id] < qty {
			return nil, ErrInsufficientStock
		}
	}
	if pointsRedeemed < 0 || pointsRedeemed > s.loyaltyPoints {
		return nil, ErrInsufficientPts
	}

	subtotal := subtotalOf(items)
	tax := taxOn(subtotal)
	total := math.Max(0, subtotal+tax-loyaltyDiscount(pointsRedeemed, subtotal))

	movements := make([]models.StockMovement, 0, len(items))
	for _, item := range items {
		prev := s.inventory[item.ProductID]
		s.inventory[item.ProductID] = prev - item.Quantity
		movements = append(movements, models.StockMovement{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			PrevStock: prev,
			NewStock:  prev - item.Quantity,
		})
	}

	earned := int(total) / earnRateDivisor
	s.loyaltyPoints -= pointsRedeemed
	s.loyaltyPoints += earned

	receipt := &models.SaleReceipt{
		Items:          items,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		PointsEarned:   earned,
		PointsRedeemed: pointsRedeemed,
		Movements:      movements,
	}
	return receipt, nil
}

// SubmitAudit — réconciliation d'audit : pour chaque produit compté,
// écart = comptage physique − stock système, puis le stock système est
// écrasé par le comptage. Les comptages négatifs sont refusés en bloc.
func (s *Store) SubmitAudit(counts map[string]int) ([]models.AuditDiscrepancy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, count := range counts {
		if count < 0 {
			return nil, ErrNegativeQuantity
		}
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	report := make([]models.AuditDiscrepancy, 0, len(ids))
	for _, id := range ids {
		system := s.inventory[id]
		count := counts[id]
		report = append(report, models.AuditDiscrepancy{
			ProductID:     id,
			SystemStock:   system,
			PhysicalCount: count,
			Discrepancy:   count - system,
		})
		s.inventory[id] = count
	}
	return report, nil
}
