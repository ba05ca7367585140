package handlers

import (
	"net/http"
	"strconv"

	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvestigatorHandler handles HTTP requests for the investigator roster
type InvestigatorHandler struct {
	investigatorService service.InvestigatorServiceInterface
}

// NewInvestigatorHandler creates a new investigator handler
func NewInvestigatorHandler(investigatorService service.InvestigatorServiceInterface) *InvestigatorHandler {
	return &InvestigatorHandler{
		investigatorService: investigatorService,
	}
}

// GetAllInvestigators handles GET /api/enqueteurs
// @Summary List the roster
// @Description Get every investigator, ordered by name
// @Tags investigators
// @Produce json
// @Success 200 {object} handlers.Response "Investigators"
// @Failure 500 {object} handlers.Response "Internal server error"
// @Router /api/enqueteurs [get]
func (h *InvestigatorHandler) GetAllInvestigators(c *gin.Context) {
	roster, err := h.investigatorService.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, roster)
}

// GetInvestigator handles GET /api/enqueteurs/:id
// @Summary Get investigator by ID
// @Tags investigators
// @Produce json
// @Param id path int true "Investigator ID"
// @Success 200 {object} handlers.Response "Investigator"
// @Failure 400 {object} handlers.Response "Invalid investigator ID"
// @Failure 404 {object} handlers.Response "Investigator not found"
// @Router /api/enqueteurs/{id} [get]
func (h *InvestigatorHandler) GetInvestigator(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid investigator ID"})
		return
	}

	inv, err := h.investigatorService.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, inv)
}

// CreateInvestigator handles POST /api/enqueteurs
// @Summary Add an investigator
// @Description Add an investigator to the roster and issue their VPN profile
// @Tags investigators
// @Accept json
// @Produce json
// @Param investigator body service.CreateInvestigatorRequest true "Investigator data"
// @Success 201 {object} handlers.Response "Created investigator"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 409 {object} handlers.Response "Email already in use"
// @Router /api/enqueteurs [post]
func (h *InvestigatorHandler) CreateInvestigator(c *gin.Context) {
	var req service.CreateInvestigatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	inv, err := h.investigatorService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, inv)
}

// DeleteInvestigator handles DELETE /api/enqueteurs/:id
// @Summary Remove an investigator
// @Description Remove an investigator; their assigned cases go back to the unassigned pool
// @Tags investigators
// @Produce json
// @Param id path int true "Investigator ID"
// @Success 200 {object} handlers.Response "Investigator removed"
// @Failure 400 {object} handlers.Response "Invalid investigator ID"
// @Failure 404 {object} handlers.Response "Investigator not found"
// @Router /api/enqueteurs/{id} [delete]
func (h *InvestigatorHandler) DeleteInvestigator(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid investigator ID"})
		return
	}

	if err := h.investigatorService.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, "investigator deleted")
}
