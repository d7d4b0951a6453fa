package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// CartHandler processes cart reads and mutations.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Added to cart"))
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	items, total, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := dto.CartResponse{
		Response: dto.OK(""),
		Items:    make([]dto.CartItemResponse, 0, len(items)),
		Total:    total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.CartItemFromModel(item))
		resp.Count += item.Quantity
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PATCH /api/cart/:id. Quantity zero removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	lineID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if err := h.facade.UpdateCartLine(c.Request.Context(), CurrentUserID(c), lineID, req.Quantity); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Cart updated"))
}

// Remove handles DELETE /api/cart/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	lineID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.RemoveCartLine(c.Request.Context(), CurrentUserID(c), lineID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Removed from cart"))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Cart cleared"))
}
