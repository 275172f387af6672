package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/utils"
)

//
// 🟢 POST /api/auth/login
//
func (a *API) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	user, ok := a.Accounts.Authenticate(input.Email, input.Password)
	if !ok {
		// État inchangé en cas d'échec
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	a.Store.Login(*user)

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		log.Printf("❌ Erreur génération JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	a.persist()

	log.Printf("✅ Connexion de %s (%s)", user.Email, user.Role)
	c.JSON(http.StatusOK, gin.H{
		"token":         token,
		"user":          user,
		"loyaltyPoints": a.Store.LoyaltyBalance(),
	})
}

//
// 🔴 POST /api/auth/logout
//
func (a *API) Logout(c *gin.Context) {
	a.Store.Logout()
	a.persist()
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}
