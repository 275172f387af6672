package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/models"
)

//
// 📊 GET /api/admin/dashboard — vue d'ensemble pour la supervision
//
func (a *API) Dashboard(c *gin.Context) {
	orders := a.Store.Orders()

	var revenue float64
	pending := 0
	for _, o := range orders {
		revenue += o.Total
		if o.Status != models.StatusDelivered {
			pending++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":      len(orders),
		"revenue":          revenue,
		"pendingDelivery":  pending,
		"lowStockProducts": a.Store.CheckLowStock(),
		"suspiciousEvents": len(a.Store.SuspiciousEvents()),
	})
}
