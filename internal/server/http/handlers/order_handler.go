package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// OrderHandler processes checkout and the customer's order history.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/cart/checkout. The whole cart converts into one
// order or nothing does.
func (h *OrderHandler) Checkout(c *gin.Context) {
	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SingleOrderResponse{
		Response: dto.OK("Order placed successfully"),
		Order:    dto.OrderFromModel(order, nil),
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrdersResponse{
		Response: dto.OK(""),
		Orders:   dto.OrdersFromModel(orders),
	})
}

// Get handles GET /api/orders/:id. Another customer's order reads as not
// found, never as forbidden.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}

	order, items, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SingleOrderResponse{
		Response: dto.OK(""),
		Order:    dto.OrderFromModel(order, items),
	})
}
