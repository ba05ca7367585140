package handlers

import (
	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for import statistics
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats handles GET /api/stats
// @Summary Import statistics
// @Description Totals plus the ten most recent imports with their record counts
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.Response "Statistics"
// @Failure 500 {object} handlers.Response "Internal server error"
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, stats)
}
