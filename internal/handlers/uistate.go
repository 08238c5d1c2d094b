// internal/handlers/uistate.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-state/internal/models"
	"github.com/novamart/storefront-state/internal/uistate"
	"github.com/novamart/storefront-state/internal/utils"
)

type UIStateHandler struct {
	state *uistate.Store
}

func NewUIStateHandler(state *uistate.Store) *UIStateHandler {
	return &UIStateHandler{state: state}
}

type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,theme"`
}

type SetSidebarRequest struct {
	Open *bool `json:"open" validate:"required"`
}

type SetActiveModuleRequest struct {
	Module string `json:"module" validate:"required"`
}

type SetSearchRequest struct {
	Query string `json:"query"`
}

type PushNotificationRequest struct {
	Kind    string `json:"kind" validate:"required"`
	Message string `json:"message" validate:"required"`

	OrderUpdate *models.OrderUpdatePayload `json:"order_update,omitempty"`
	PriceDrop   *models.PriceDropPayload   `json:"price_drop,omitempty"`
	Reward      *models.RewardPayload      `json:"reward,omitempty"`
	Security    *models.SecurityPayload    `json:"security,omitempty"`
}

// GET /v1/ui-state
func (h *UIStateHandler) GetUIState(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"ui_state": h.state.Snapshot()})
}

// PUT /v1/ui-state/theme
func (h *UIStateHandler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.state.SetTheme(models.Theme(req.Theme))
	utils.SuccessResponse(c, gin.H{"theme": req.Theme})
}

// PUT /v1/ui-state/sidebar
func (h *UIStateHandler) SetSidebar(c *gin.Context) {
	var req SetSidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Open == nil {
		utils.BadRequestResponse(c, "open is required", nil)
		return
	}

	h.state.SetSidebarOpen(*req.Open)
	utils.SuccessResponse(c, gin.H{"sidebar_open": *req.Open})
}

// PUT /v1/ui-state/active-module
//
// The module name is not validated against the rendered dashboard sections;
// that check belongs to the presentation layer.
func (h *UIStateHandler) SetActiveModule(c *gin.Context) {
	var req SetActiveModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Module == "" {
		utils.BadRequestResponse(c, "module is required", nil)
		return
	}

	h.state.SetActiveModule(req.Module)
	utils.SuccessResponse(c, gin.H{"active_module": req.Module})
}

// PUT /v1/ui-state/search
func (h *UIStateHandler) SetSearch(c *gin.Context) {
	var req SetSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	h.state.SetSearchQuery(req.Query)
	utils.SuccessResponse(c, gin.H{"search_query": req.Query})
}

// GET /v1/ui-state/notifications
func (h *UIStateHandler) ListNotifications(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"notifications": h.state.Snapshot().Notifications})
}

// POST /v1/ui-state/notifications
func (h *UIStateHandler) PushNotification(c *gin.Context) {
	var req PushNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	var n models.Notification
	switch models.NotificationKind(req.Kind) {
	case models.NotificationOrderUpdate:
		if req.OrderUpdate == nil {
			utils.BadRequestResponse(c, "order_update payload is required", nil)
			return
		}
		n = models.NewOrderUpdateNotification(req.OrderUpdate.OrderID, req.OrderUpdate.Status, req.Message)
	case models.NotificationPriceDrop:
		if req.PriceDrop == nil {
			utils.BadRequestResponse(c, "price_drop payload is required", nil)
			return
		}
		n = models.NewPriceDropNotification(req.PriceDrop.ProductID, req.PriceDrop.OldPrice, req.PriceDrop.NewPrice, req.Message)
	case models.NotificationReward:
		if req.Reward == nil {
			utils.BadRequestResponse(c, "reward payload is required", nil)
			return
		}
		n = models.NewRewardNotification(req.Reward.Points, req.Reward.Reason, req.Message)
	case models.NotificationSecurity:
		if req.Security == nil {
			utils.BadRequestResponse(c, "security payload is required", nil)
			return
		}
		n = models.NewSecurityNotification(req.Security.Event, req.Message)
	default:
		utils.BadRequestResponse(c, "Unknown notification kind", nil)
		return
	}

	h.state.PushNotification(n)
	utils.CreatedResponse(c, gin.H{"notification": n})
}

// PUT /v1/ui-state/notifications/:id/read
func (h *UIStateHandler) MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")
	utils.SuccessResponse(c, gin.H{
		"notification_id": id,
		"updated":         h.state.MarkNotificationRead(id),
	})
}

// DELETE /v1/ui-state/notifications
func (h *UIStateHandler) ClearNotifications(c *gin.Context) {
	h.state.ClearNotifications()
	utils.SuccessResponse(c, gin.H{"notifications": []models.Notification{}})
}

// POST /v1/ui-state/selected-items/:id/toggle
func (h *UIStateHandler) ToggleSelectedItem(c *gin.Context) {
	h.state.ToggleSelectedItem(c.Param("id"))
	utils.SuccessResponse(c, gin.H{"selected_items": h.state.Snapshot().SelectedItems})
}

// DELETE /v1/ui-state/selected-items
func (h *UIStateHandler) ClearSelectedItems(c *gin.Context) {
	h.state.ClearSelectedItems()
	utils.SuccessResponse(c, gin.H{"selected_items": []string{}})
}
