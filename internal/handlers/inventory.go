package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/cache"
	"kirana_back_end/internal/store"
)

//
// 📦 GET /api/inventory
//
func (a *API) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"inventory": a.Store.Inventory(),
		"alerts":    a.Store.LowStockAlerts(),
	})
}

//
// ✏️ PUT /api/inventory/:productId — quantité absolue (écrasement)
//
func (a *API) UpdateInventory(c *gin.Context) {
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité requise"})
		return
	}

	productID := c.Param("productId")
	if err := a.Store.UpdateInventory(productID, *input.Quantity); err != nil {
		if errors.Is(err, store.ErrNegativeQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le stock ne peut pas être négatif"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.persist()
	qty, _ := a.Store.InventoryQuantity(productID)
	log.Printf("✅ Stock mis à jour pour %s: %d", productID, qty)
	c.JSON(http.StatusOK, gin.H{"productId": productID, "quantity": qty})
}

//
// 🚨 GET /api/inventory/low-stock
//
func (a *API) CheckLowStock(c *gin.Context) {
	low := a.Store.CheckLowStock()
	a.persist()

	if len(low) > 0 {
		cache.PublishAlert(context.Background(), gin.H{
			"type":     "low_stock",
			"products": low,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"lowStock":  low,
		"threshold": store.LowStockThreshold,
	})
}

//
// 📋 POST /api/inventory/audit — réconciliation comptage physique
//
func (a *API) SubmitAudit(c *gin.Context) {
	var input struct {
		Counts map[string]int `json:"counts" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Counts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comptages requis"})
		return
	}

	report, err := a.Store.SubmitAudit(input.Counts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le stock ne peut pas être négatif"})
		return
	}

	a.persist()

	flagged := 0
	for _, d := range report {
		if d.Discrepancy != 0 {
			flagged++
		}
	}
	log.Printf("✅ Audit de stock soumis: %d produits, %d écarts", len(report), flagged)

	c.JSON(http.StatusOK, gin.H{
		"report":  report,
		"flagged": flagged,
	})
}
