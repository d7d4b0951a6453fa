package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/server/http/dto"
	"github.com/ovenlight/bakeshop/internal/server/http/middleware"
)

// AuthHandler processes signup, login and session management.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	user, token, err := h.facade.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Response: dto.OK("Account created successfully"),
		User:     dto.UserFromModel(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Response: dto.OK("Login successful"),
		User:     dto.UserFromModel(user),
	})
}

// AdminLogin handles POST /api/auth/admin/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	user, token, err := h.facade.AdminLogin(c.Request.Context(), req.Username, req.Email, req.Password, req.SecurityCode)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Response: dto.OK("Login successful"),
		User:     dto.UserFromModel(user),
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, dto.OK("Logged out"))
}

// Session handles GET /api/auth/session. It never fails: an absent or
// invalid token answers logged_in=false.
func (h *AuthHandler) Session(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusOK, dto.SessionResponse{Response: dto.OK(""), LoggedIn: false})
		return
	}

	user, err := h.facade.UserByID(c.Request.Context(), userID)
	if err != nil || !user.IsActive {
		c.JSON(http.StatusOK, dto.SessionResponse{Response: dto.OK(""), LoggedIn: false})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		Response: dto.OK(""),
		LoggedIn: true,
		User:     dto.UserFromModel(user),
	})
}
