package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// 🛒 GET /api/cart
//
func (a *API) GetCart(c *gin.Context) {
	items := a.Store.Cart()
	subtotal := a.Store.Subtotal()

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"subtotal": subtotal,
		"count":    len(items),
	})
}

//
// 🟢 POST /api/cart/add
//
func (a *API) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	product, ok := a.Store.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	a.Store.AddToCart(product, input.Quantity)
	a.persist()

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   a.Store.Cart(),
	})
}

//
// 🔁 PUT /api/cart/:productId
//
func (a *API) UpdateCartQuantity(c *gin.Context) {
	// Quantité absente ou ≤ 0 : la ligne est supprimée
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	a.Store.UpdateCartQuantity(c.Param("productId"), input.Quantity)
	a.persist()

	c.JSON(http.StatusOK, gin.H{"items": a.Store.Cart()})
}

//
// ❌ DELETE /api/cart/:productId
//
func (a *API) RemoveFromCart(c *gin.Context) {
	a.Store.RemoveFromCart(c.Param("productId"))
	a.persist()

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   a.Store.Cart(),
	})
}

//
// 🧹 DELETE /api/cart
//
func (a *API) ClearCart(c *gin.Context) {
	a.Store.ClearCart()
	a.persist()
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
