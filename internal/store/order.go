package store

import (
	"math"
	"time"

	"kirana_back_end/internal/models"
)

// statusRank — la séquence de livraison est un enchaînement strict,
// chaque transition avance d'exactement un cran
var statusRank = map[string]int{
	models.StatusPlaced:    0,
	models.StatusPacked:    1,
	models.StatusOTD:       2,
	models.StatusDelivered: 3,
}

// CreateOrder — préconditions : utilisateur connecté, panier non vide,
// points utilisés ≤ solde. Total = sous-total + TVA arrondie − remise
// fidélité, plancher à zéro. Création de la commande, vidage du panier et
// débit des points forment une seule transition atomique.
func (s *Store) CreateOrder(address string, loyaltyPointsUsed int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return nil, ErrNotLoggedIn
	}
	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}
	if loyaltyPointsUsed < 0 || loyaltyPointsUsed > s.loyaltyPoints {
		return nil, ErrInsufficientPts
	}

	subtotal := subtotalOf(s.cart)
	total := math.Max(0, subtotal+taxOn(subtotal)-loyaltyDiscount(loyaltyPointsUsed, subtotal))

	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)

	order := models.Order{
		ID:                s.newID("ORD", s.orderIDTaken),
		UserID:            s.currentUser.ID,
		Items:             items,
		Total:             total,
		Status:            models.StatusPlaced,
		CreatedAt:         time.Now(),
		DeliveryAddress:   address,
		LoyaltyPointsUsed: loyaltyPointsUsed,
	}

	s.orders = append(s.orders, order)
	s.cart = nil
	s.loyaltyPoints -= loyaltyPointsUsed

	return &order, nil
}

// loyaltyDiscount = floor((points/100) × sous-total)
func loyaltyDiscount(points int, subtotal float64) float64 {
	return math.Floor(float64(points) / 100 * subtotal)
}

func (s *Store) orderIDTaken(id string) bool {
	for _, o := range s.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// UpdateOrderStatus valide la séquence Placed→Packed→OTD→Delivered : pas
// de saut, pas de retour en arrière.
func (s *Store) UpdateOrderStatus(orderID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := statusRank[status]
	if !ok {
		return ErrBadTransition
	}
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if next != statusRank[s.orders[i].Status]+1 {
			return ErrBadTransition
		}
		s.orders[i].Status = status
		return nil
	}
	return ErrUnknownOrder
}

// Orders — registre complet, du plus ancien au plus récent.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.orders)
}

// OrdersForUser — commandes d'un utilisateur donné.
func (s *Store) OrdersForUser(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return copyOrders(out)
}

func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out
}
