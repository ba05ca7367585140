package handlers

import (
	"net/http"
	"strconv"

	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FindingsHandler handles HTTP requests for case findings
type FindingsHandler struct {
	findingsService service.FindingsServiceInterface
}

// NewFindingsHandler creates a new findings handler
func NewFindingsHandler(findingsService service.FindingsServiceInterface) *FindingsHandler {
	return &FindingsHandler{
		findingsService: findingsService,
	}
}

// GetFindings handles GET /api/donnees-enqueteur/:id
// @Summary Get the findings of a case
// @Tags findings
// @Produce json
// @Param id path int true "Case ID"
// @Success 200 {object} handlers.Response "Findings"
// @Failure 400 {object} handlers.Response "Invalid case ID"
// @Failure 404 {object} handlers.Response "Findings not found"
// @Router /api/donnees-enqueteur/{id} [get]
func (h *FindingsHandler) GetFindings(c *gin.Context) {
	caseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid case ID"})
		return
	}

	f, err := h.findingsService.GetByCaseID(uint(caseID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, f)
}

// UpdateFindings handles POST /api/donnees-enqueteur/:id
// @Summary Submit findings for a case
// @Description Partial update: only the fields present in the body are written
// @Tags findings
// @Accept json
// @Produce json
// @Param id path int true "Case ID"
// @Param findings body service.UpdateFindingsRequest true "Findings fields to update"
// @Success 200 {object} handlers.Response "Updated findings"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 404 {object} handlers.Response "Case not found"
// @Router /api/donnees-enqueteur/{id} [post]
func (h *FindingsHandler) UpdateFindings(c *gin.Context) {
	caseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid case ID"})
		return
	}

	var req service.UpdateFindingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	f, err := h.findingsService.Update(uint(caseID), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, f)
}
