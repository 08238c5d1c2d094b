// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-state/internal/catalog"
	"github.com/novamart/storefront-state/internal/models"
	"github.com/novamart/storefront-state/internal/utils"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GET /v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products := h.catalog.Products()
	if category := c.Query("category"); category != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	page, total := utils.PaginateSlice(products, params)
	utils.PaginatedResponse(c, utils.CreatePaginationResult(page, total, params))
}

// GET /v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ProductByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"product":        product,
		"sellable_stock": product.SellableStock(),
	})
}

// GET /v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"categories": h.catalog.Categories()})
}
