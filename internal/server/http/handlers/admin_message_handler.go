package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// AdminMessageHandler triages contact messages from the back office.
type AdminMessageHandler struct {
	facade AdminFacade
}

// NewAdminMessageHandler creates AdminMessageHandler instance.
func NewAdminMessageHandler(facade AdminFacade) *AdminMessageHandler {
	return &AdminMessageHandler{facade: facade}
}

// List handles GET /api/admin/messages.
func (h *AdminMessageHandler) List(c *gin.Context) {
	messages, err := h.facade.AdminMessages(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessagesResponse{Response: dto.OK(""), Messages: dto.MessagesFromModel(messages)})
}

// UpdateStatus handles PATCH /api/admin/messages/:id/status.
func (h *AdminMessageHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if err := h.facade.AdminUpdateMessageStatus(c.Request.Context(), id, model.MessageStatus(req.Status)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Message status updated"))
}

// Delete handles DELETE /api/admin/messages/:id.
func (h *AdminMessageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.AdminDeleteMessage(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Message deleted"))
}
