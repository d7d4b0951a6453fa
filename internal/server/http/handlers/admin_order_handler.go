package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// AdminOrderHandler manages orders from the back office.
type AdminOrderHandler struct {
	facade AdminFacade
}

// NewAdminOrderHandler creates AdminOrderHandler instance.
func NewAdminOrderHandler(facade AdminFacade) *AdminOrderHandler {
	return &AdminOrderHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminOrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AdminOrders(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Response: dto.OK(""), Orders: dto.OrdersFromModel(orders)})
}

// Get handles GET /api/admin/orders/:id.
func (h *AdminOrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, items, err := h.facade.AdminOrder(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SingleOrderResponse{Response: dto.OK(""), Order: dto.OrderFromModel(order, items)})
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if err := h.facade.AdminUpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Order status updated"))
}

// Delete handles DELETE /api/admin/orders/:id.
func (h *AdminOrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.AdminDeleteOrder(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Order deleted"))
}
