package store

import (
	"math"

	"kirana_back_end/internal/models"
)

// Taux de TVA appliqué au sous-total du panier
const TaxRate = 0.18

// AddToCart — produit déjà présent : on incrémente la quantité. Sinon on
// ajoute une ligne en capturant le prix courant du produit. Aucun contrôle
// de stock ici : le flux d'achat client n'en fait pas (seul le POS vérifie).
func (s *Store) AddToCart(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == product.ID {
			s.cart[i].Quantity += quantity
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
	})
}

// RemoveFromCart supprime la ligne du produit. No-op si absente.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID)
}

func (s *Store) removeFromCartLocked(productID string) {
	out := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	s.cart = out
}

// UpdateCartQuantity — quantité ≤ 0 vaut suppression, sinon écrasement
// (pas d'incrément). No-op si la ligne n'existe pas.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart vide le panier sans condition.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart retourne une copie du panier.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Subtotal = Σ(prix × quantité)
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalOf(s.cart)
}

func subtotalOf(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// taxOn = round(sous-total × 0.18) — l'arrondi fait partie du contrat
func taxOn(subtotal float64) float64 {
	return math.Round(subtotal * TaxRate)
}
