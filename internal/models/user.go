package models

// Rôles applicatifs — fixés par le jeu de comptes démo
const (
	RoleCustomer = "customer"
	RoleRetailer = "retailer"
	RoleAdmin    = "admin"
)

type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Password      string `json:"-"` // hash bcrypt, jamais sérialisé
	Name          string `json:"name"`
	Role          string `json:"role"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}
