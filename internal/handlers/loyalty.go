package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// 💎 GET /api/loyalty
//
func (a *API) GetLoyaltyBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balance": a.Store.LoyaltyBalance()})
}

//
// 🟢 POST /api/loyalty/earn
//
func (a *API) EarnLoyaltyPoints(c *gin.Context) {
	var input struct {
		Points int `json:"points" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Points <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre de points invalide"})
		return
	}

	a.Store.AddLoyaltyPoints(input.Points)
	a.persist()
	c.JSON(http.StatusOK, gin.H{"balance": a.Store.LoyaltyBalance()})
}

//
// 🔻 POST /api/loyalty/redeem — échec explicite si points > solde
//
func (a *API) RedeemLoyaltyPoints(c *gin.Context) {
	var input struct {
		Points int `json:"points" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Points <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre de points invalide"})
		return
	}

	if !a.Store.UseLoyaltyPoints(input.Points) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Points de fidélité insuffisants"})
		return
	}

	a.persist()
	c.JSON(http.StatusOK, gin.H{"balance": a.Store.LoyaltyBalance()})
}
