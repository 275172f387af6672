package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "admin"
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireRetailer — opérations magasin (inventaire, POS, audit, alertes).
// L'admin y a aussi accès pour la supervision.
func RequireRetailer(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || (role != models.RoleRetailer && role != models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé au magasin"})
		c.Abort()
		return
	}
	c.Next()
}
