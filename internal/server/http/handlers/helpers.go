package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/server/http/dto"
	"github.com/ovenlight/bakeshop/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) string {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(string)
	return role
}

// respondDomainError maps a use case failure onto the JSON envelope. Expected
// domain outcomes answer HTTP 200 with success=false so browser clients read
// the message; only unexpected failures surface as 500.
func respondDomainError(c *gin.Context, err error) {
	if stockErr, ok := domainErrors.AsStockError(err); ok {
		c.JSON(http.StatusOK, dto.Fail(stockErr.Error()))
		return
	}

	var msg string
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		msg = err.Error()
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		msg = "Invalid email or password"
	case errors.Is(err, domainErrors.ErrInvalidSecurityCode):
		msg = "Invalid security code"
	case errors.Is(err, domainErrors.ErrAccountDisabled):
		msg = "Your account has been disabled"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		msg = "An account with this email already exists"
	case errors.Is(err, domainErrors.ErrEmptyCart):
		msg = "Your cart is empty"
	case errors.Is(err, domainErrors.ErrCheckoutFailed):
		msg = "Checkout failed. Please try again."
	case errors.Is(err, domainErrors.ErrProductUnavailable):
		msg = "This product is not available"
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		msg = "Invalid status"
	case errors.Is(err, domainErrors.ErrSelfDelete):
		msg = "You cannot delete your own account"
	case errors.Is(err, domainErrors.ErrNotFound):
		msg = "Not found"
	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, dto.Fail(msg))
}

// pathID parses the :id route parameter; the second return is false when the
// value is not a positive integer (already answered with 200/failure).
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusOK, dto.Fail("Invalid id"))
		return 0, false
	}
	return id, true
}
