package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

//
// 🔎 GET /api/search?q=&limit=
//
func (a *API) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	results := a.Index.Search(query)

	// L'index ne tronque pas, c'est l'appelant qui choisit
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(results) {
			results = results[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"products": results,
		"total":    len(results),
	})
}

//
// 🛍️ GET /api/products
//
func (a *API) GetProducts(c *gin.Context) {
	products := a.Store.Products()
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

//
// GET /api/products/:id
//
func (a *API) GetProductByID(c *gin.Context) {
	product, ok := a.Store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	qty, tracked := a.Store.InventoryQuantity(product.ID)
	if tracked {
		product.Stock = qty
	}
	c.JSON(http.StatusOK, product)
}
