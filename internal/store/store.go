package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"kirana_back_end/internal/anomaly"
	"kirana_back_end/internal/models"
)

// Erreurs métier — signal explicite, jamais de panique pour une règle
// de gestion violée
var (
	ErrNotLoggedIn       = errors.New("aucun utilisateur connecté")
	ErrEmptyCart         = errors.New("panier vide")
	ErrInsufficientPts   = errors.New("points de fidélité insuffisants")
	ErrNegativeQuantity  = errors.New("quantité négative refusée")
	ErrUnknownOrder      = errors.New("commande introuvable")
	ErrBadTransition     = errors.New("transition de statut invalide")
	ErrInsufficientStock = errors.New("stock insuffisant")
)

// Store — le conteneur d'état partagé de l'application : panier, registre
// des commandes, solde fidélité, inventaire et journal des événements
// suspects. Un objet explicite injecté dans les handlers, pas un singleton
// ambiant. Toutes les opérations prennent le verrou : chaque mutation est
// atomique vue de l'extérieur.
type Store struct {
	mu sync.Mutex

	currentUser      *models.User
	cart             []models.CartItem
	orders           []models.Order
	products         []models.Product // catalogue, lecture seule
	loyaltyPoints    int
	inventory        map[string]int
	lowStockAlerts   []string
	suspiciousEvents []models.SuspiciousEvent

	scorer anomaly.Scorer
}

// New construit le conteneur. L'inventaire est initialisé depuis le stock
// du catalogue, comme au premier lancement de l'application d'origine.
func New(products []models.Product, scorer anomaly.Scorer) *Store {
	s := &Store{
		products:  make([]models.Product, len(products)),
		inventory: make(map[string]int, len(products)),
		scorer:    scorer,
	}
	copy(s.products, products)
	for _, p := range products {
		s.inventory[p.ID] = p.Stock
	}
	return s
}

// Products retourne le catalogue dans son ordre d'origine.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID cherche un produit du catalogue. Absent = (zero, false),
// jamais d'erreur bruyante.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// --- Session ---

// Login installe l'identité courante et initialise le solde fidélité de
// la session depuis les points du compte.
func (s *Store) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.currentUser = &u
	s.loyaltyPoints = user.LoyaltyPoints
}

// Logout vide le panier et remet le solde fidélité à zéro. Les commandes
// et l'inventaire survivent : ils ne sont pas liés à la session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	s.cart = nil
	s.loyaltyPoints = 0
}

func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// newID génère un identifiant dérivé de l'horodatage, avec un suffixe
// aléatoire en cas de collision dans la même milliseconde.
func (s *Store) newID(prefix string, taken func(string) bool) string {
	id := fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
	if taken(id) {
		id = fmt.Sprintf("%s-%s", id, uuid.NewString()[:8])
	}
	return id
}
