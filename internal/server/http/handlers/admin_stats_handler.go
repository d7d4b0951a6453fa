package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenlight/bakeshop/internal/server/http/dto"
)

// AdminStatsHandler serves the dashboard counters.
type AdminStatsHandler struct {
	facade AdminFacade
}

// NewAdminStatsHandler creates AdminStatsHandler instance.
func NewAdminStatsHandler(facade AdminFacade) *AdminStatsHandler {
	return &AdminStatsHandler{facade: facade}
}

// Get handles GET /api/admin/stats.
func (h *AdminStatsHandler) Get(c *gin.Context) {
	stats, err := h.facade.AdminStats(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{Response: dto.OK(""), Stats: dto.StatsFromModel(stats)})
}
