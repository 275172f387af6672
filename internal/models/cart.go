package models

// CartItem — le prix est capturé au moment de l'ajout, jamais re-lu
// depuis le catalogue ensuite.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
