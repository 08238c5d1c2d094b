// internal/handlers/orders.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-state/internal/models"
	"github.com/novamart/storefront-state/internal/store"
	"github.com/novamart/storefront-state/internal/utils"
)

type OrderHandler struct {
	orders *store.OrderStore
}

func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrderRequest carries a fully computed order: the caller assigns the
// id and the money fields; this layer only stores them.
type CreateOrderRequest struct {
	ID            string            `json:"id" validate:"required"`
	CustomerID    string            `json:"customer_id" validate:"required"`
	CustomerName  string            `json:"customer_name,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	Items         []models.CartItem `json:"items" validate:"required,min=1,dive"`
	Subtotal      float64           `json:"subtotal" validate:"min=0"`
	Tax           float64           `json:"tax" validate:"min=0"`
	Shipping      float64           `json:"shipping" validate:"min=0"`
	Total         float64           `json:"total" validate:"min=0"`
	ShippingAddr  models.Address    `json:"shipping_address"`
	PaymentStatus string            `json:"payment_status,omitempty" validate:"omitempty,payment_status"`
	OrderStatus   string            `json:"order_status,omitempty" validate:"omitempty,order_status"`
	SellerID      string            `json:"seller_id,omitempty"`
}

// UpdateStatusRequest patches either status field, or both in one call.
type UpdateStatusRequest struct {
	OrderStatus   string `json:"order_status,omitempty" validate:"omitempty,order_status"`
	PaymentStatus string `json:"payment_status,omitempty" validate:"omitempty,payment_status"`
}

// POST /v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			utils.BadRequestResponse(c, "Item quantity must be at least 1", nil)
			return
		}
	}

	order := models.Order{
		ID:            req.ID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         req.Items,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		Shipping:      req.Shipping,
		Total:         req.Total,
		ShippingAddr:  req.ShippingAddr,
		PaymentStatus: models.PaymentStatusPending,
		OrderStatus:   models.OrderStatusPending,
		SellerID:      req.SellerID,
	}
	if req.PaymentStatus != "" {
		order.PaymentStatus = models.PaymentStatus(req.PaymentStatus)
	}
	if req.OrderStatus != "" {
		order.OrderStatus = models.OrderStatus(req.OrderStatus)
	}

	created := h.orders.Create(order)
	utils.CreatedResponse(c, gin.H{"order": created})
}

// GET /v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	all := h.orders.ListAll()
	page, total := utils.PaginateSlice(all, params)
	utils.PaginatedResponse(c, utils.CreatePaginationResult(page, total, params))
}

// GET /v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.orders.GetByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, gin.H{"order": order})
}

// PATCH /v1/orders/:id/status
//
// An unknown id is not an error here: the store's silent no-op is surfaced
// as updated:false so callers can tell nothing changed.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.OrderStatus == "" && req.PaymentStatus == "" {
		utils.BadRequestResponse(c, "Provide order_status or payment_status", nil)
		return
	}

	id := c.Param("id")
	updated := false
	if req.OrderStatus != "" {
		updated = h.orders.UpdateOrderStatus(id, models.OrderStatus(req.OrderStatus)) || updated
	}
	if req.PaymentStatus != "" {
		updated = h.orders.UpdatePaymentStatus(id, models.PaymentStatus(req.PaymentStatus)) || updated
	}

	resp := gin.H{"updated": updated}
	if order, ok := h.orders.GetByID(id); ok {
		resp["order"] = order
	}
	utils.SuccessResponse(c, resp)
}

// GET /v1/customers/:id/orders
func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	orders := h.orders.ByCustomer(c.Param("id"))
	utils.SuccessResponse(c, gin.H{"orders": orders})
}

// GET /v1/sellers/:id/orders
func (h *OrderHandler) GetSellerOrders(c *gin.Context) {
	orders := h.orders.BySeller(c.Param("id"))
	utils.SuccessResponse(c, gin.H{"orders": orders})
}
