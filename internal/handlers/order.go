package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/archive"
	"kirana_back_end/internal/models"
	"kirana_back_end/internal/store"
)

//
// 📦 POST /api/orders — checkout
//
func (a *API) CreateOrder(c *gin.Context) {
	var input struct {
		Address           string `json:"address" binding:"required"`
		LoyaltyPointsUsed int    `json:"loyaltyPointsUsed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse de livraison requise"})
		return
	}

	order, err := a.Store.CreateOrder(input.Address, input.LoyaltyPointsUsed)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotLoggedIn):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		case errors.Is(err, store.ErrInsufficientPts):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Points de fidélité insuffisants"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	archive.ArchiveOrder(*order)
	a.persist()

	log.Printf("✅ Commande %s créée (total: %.2f)", order.ID, order.Total)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

//
// 📋 GET /api/orders — l'admin voit tout, le client voit les siennes
//
func (a *API) GetOrders(c *gin.Context) {
	role := c.GetString("role")

	var orders []models.Order
	if role == models.RoleAdmin || role == models.RoleRetailer {
		orders = a.Store.Orders()
	} else {
		orders = a.Store.OrdersForUser(c.GetString("user_id"))
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

//
// 🔍 GET /api/orders/:id
//
func (a *API) GetOrderByID(c *gin.Context) {
	order, ok := a.Store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	// Un client ne voit que ses propres commandes
	role := c.GetString("role")
	if role == models.RoleCustomer && order.UserID != c.GetString("user_id") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}

//
// 🚚 PUT /api/orders/:id/status — admin uniquement
//
func (a *API) UpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}

	err := a.Store.UpdateOrderStatus(c.Param("id"), input.Status)
	switch {
	case errors.Is(err, store.ErrUnknownOrder):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case errors.Is(err, store.ErrBadTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transition de statut invalide"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.persist()
	order, _ := a.Store.OrderByID(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "order": order})
}
