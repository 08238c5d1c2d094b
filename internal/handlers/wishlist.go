// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-state/internal/models"
	"github.com/novamart/storefront-state/internal/store"
	"github.com/novamart/storefront-state/internal/utils"
)

type WishlistHandler struct {
	wishlist *store.WishlistStore
}

func NewWishlistHandler(wishlist *store.WishlistStore) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

type WishlistProductRequest struct {
	Product models.Product `json:"product" validate:"required"`
}

// GET /v1/wishlist
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"products": h.wishlist.ListAll()})
}

// GET /v1/wishlist/:id
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	id := c.Param("id")
	utils.SuccessResponse(c, gin.H{
		"product_id": id,
		"in_wishlist": h.wishlist.Contains(id),
	})
}

// POST /v1/wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req WishlistProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Product.ID == "" {
		utils.BadRequestResponse(c, "Product id is required", nil)
		return
	}

	h.wishlist.Add(req.Product)
	utils.CreatedResponse(c, gin.H{"product": req.Product})
}

// POST /v1/wishlist/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	var req WishlistProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Product.ID == "" {
		utils.BadRequestResponse(c, "Product id is required", nil)
		return
	}

	inWishlist := h.wishlist.Toggle(req.Product)
	utils.SuccessResponse(c, gin.H{
		"product_id":  req.Product.ID,
		"in_wishlist": inWishlist,
	})
}

// DELETE /v1/wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	id := c.Param("id")
	removed := h.wishlist.Remove(id)
	utils.SuccessResponse(c, gin.H{
		"product_id": id,
		"removed":    removed,
	})
}
