package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/domain/model"
	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// AdminUserHandler manages accounts from the back office.
type AdminUserHandler struct {
	facade AdminFacade
}

// NewAdminUserHandler creates AdminUserHandler instance.
func NewAdminUserHandler(facade AdminFacade) *AdminUserHandler {
	return &AdminUserHandler{facade: facade}
}

// List handles GET /api/admin/users.
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.facade.AdminUsers(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UsersResponse{Response: dto.OK(""), Users: dto.UsersFromModel(users)})
}

// Get handles GET /api/admin/users/:id.
func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.facade.AdminUser(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SingleUserResponse{Response: dto.OK(""), User: dto.UserFromModel(user)})
}

// Update handles PUT /api/admin/users/:id.
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if err := h.facade.AdminUpdateUser(c.Request.Context(), id, req.Name, req.Email, model.Role(req.Role)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("User updated"))
}

// Delete handles DELETE /api/admin/users/:id. Admins cannot delete their own
// account.
func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.AdminDeleteUser(c.Request.Context(), CurrentUserID(c), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("User deleted"))
}
