package models

// Product — entrée du catalogue statique. Le cœur ne fait que la lire :
// le cycle de vie du catalogue appartient à la source externe.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
}
