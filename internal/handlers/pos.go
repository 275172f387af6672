package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/archive"
	"kirana_back_end/internal/cache"
	"kirana_back_end/internal/models"
	"kirana_back_end/internal/store"
)

//
// 🧾 POST /api/pos/checkout — encaissement caisse
//
func (a *API) POSCheckout(c *gin.Context) {
	var input struct {
		Items []struct {
			ProductID string `json:"productId" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
		LoyaltyPointsRedeemed int `json:"loyaltyPointsRedeemed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lignes de vente requises"})
		return
	}

	// Le POS capture le prix catalogue au moment de l'encaissement
	items := make([]models.CartItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, ok := a.Store.ProductByID(line.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable: " + line.ProductID})
			return
		}
		items = append(items, models.CartItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	receipt, err := a.Store.RecordSale(items, input.LoyaltyPointsRedeemed)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Stock insuffisant"})
		case errors.Is(err, store.ErrInsufficientPts):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Points de fidélité insuffisants"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	archive.ArchiveSale(c.GetString("user_id"), *receipt)
	a.persist()

	// La vente peut faire passer des produits sous le seuil
	if low := a.Store.CheckLowStock(); len(low) > 0 {
		cache.PublishAlert(context.Background(), gin.H{
			"type":     "low_stock",
			"products": low,
		})
	}

	log.Printf("✅ Vente encaissée: %.2f, %d points gagnés", receipt.Total, receipt.PointsEarned)
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}
