package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/archive"
	"kirana_back_end/internal/cache"
)

//
// 🕵️ GET /api/events — journal des événements suspects
//
func (a *API) GetSuspiciousEvents(c *gin.Context) {
	events := a.Store.SuspiciousEvents()
	c.JSON(http.StatusOK, gin.H{"events": events, "total": len(events)})
}

//
// 🚨 POST /api/events — signaler une anomalie
//
func (a *API) AddSuspiciousEvent(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Type      string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	event := a.Store.AddSuspiciousEvent(input.ProductID, input.Type)
	archive.ArchiveEvent(event)
	a.persist()

	cache.PublishAlert(context.Background(), gin.H{
		"type":  "suspicious_event",
		"event": event,
	})

	c.JSON(http.StatusCreated, gin.H{"event": event})
}
