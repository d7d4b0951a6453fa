package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// ContactHandler accepts public contact form submissions.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler creates ContactHandler instance.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if _, err := h.facade.SubmitContactMessage(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Thank you for your message! We will get back to you soon."))
}
