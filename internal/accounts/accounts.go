package accounts

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"kirana_back_end/internal/models"
)

// Authenticator isole la vérification d'identité du reste du cœur :
// l'implémentation démo pourra être remplacée par un vrai annuaire sans
// toucher aux handlers.
type Authenticator interface {
	Authenticate(email, password string) (*models.User, bool)
}

// DemoAccounts — jeu de comptes fixe, jamais créé/détruit à l'exécution.
// Les mots de passe sont stockés hashés (bcrypt), jamais en clair.
type DemoAccounts struct {
	users []models.User
}

type demoSeed struct {
	id, email, password, name, role string
	loyaltyPoints                   int
}

var demoSeeds = []demoSeed{
	{"1", "customer@test.com", "123", "John Customer", models.RoleCustomer, 500},
	{"2", "retailer@test.com", "123", "Retail Store", models.RoleRetailer, 0},
	{"3", "admin@test.com", "123", "Admin User", models.RoleAdmin, 0},
}

func NewDemoAccounts() *DemoAccounts {
	a := &DemoAccounts{}
	for _, s := range demoSeeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Erreur hash mot de passe démo: %v", err)
		}
		a.users = append(a.users, models.User{
			ID:            s.id,
			Email:         s.email,
			Password:      string(hash),
			Name:          s.name,
			Role:          s.role,
			LoyaltyPoints: s.loyaltyPoints,
		})
	}
	return a
}

// Authenticate — correspondance exacte sur l'email, vérification bcrypt
// du mot de passe. Retourne une copie pour que l'appelant ne puisse pas
// muter le jeu de comptes.
func (a *DemoAccounts) Authenticate(email, password string) (*models.User, bool) {
	email = strings.TrimSpace(email)
	for i := range a.users {
		if a.users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.users[i].Password), []byte(password)) != nil {
			return nil, false
		}
		u := a.users[i]
		return &u, true
	}
	return nil, false
}
