package handlers

import (
	"net/http"
	"strconv"

	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CaseHandler handles HTTP requests for investigation cases
type CaseHandler struct {
	caseService service.CaseServiceInterface
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService service.CaseServiceInterface) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}

// GetAllCases handles GET /api/donnees
// @Summary List all cases
// @Description Get every investigation case with its findings, in import order
// @Tags cases
// @Produce json
// @Success 200 {object} handlers.Response "Cases with findings"
// @Failure 500 {object} handlers.Response "Internal server error"
// @Router /api/donnees [get]
func (h *CaseHandler) GetAllCases(c *gin.Context) {
	cases, err := h.caseService.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, cases)
}

// GetCase handles GET /api/donnees/:id
// @Summary Get case by ID
// @Description Get one investigation case with its findings
// @Tags cases
// @Produce json
// @Param id path int true "Case ID"
// @Success 200 {object} handlers.Response "Case with findings"
// @Failure 400 {object} handlers.Response "Invalid case ID"
// @Failure 404 {object} handlers.Response "Case not found"
// @Router /api/donnees/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid case ID"})
		return
	}

	result, err := h.caseService.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, result)
}

// CreateCase handles POST /api/donnees
// @Summary Create a case manually
// @Description Add a hand-entered case outside any import file
// @Tags cases
// @Accept json
// @Produce json
// @Param case body service.CreateCaseRequest true "Case data"
// @Success 201 {object} handlers.Response "Created case"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Router /api/donnees [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req service.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.caseService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, result)
}

// AssignCase handles POST /api/assign-enquete
// @Summary Assign or release a case
// @Description Route a case to an investigator by case number; a null enqueteurId releases it
// @Tags cases
// @Accept json
// @Produce json
// @Param assignment body service.AssignRequest true "Assignment"
// @Success 200 {object} handlers.Response "Assignment applied"
// @Failure 400 {object} handlers.Response "Invalid request body"
// @Failure 404 {object} handlers.Response "Case or investigator not found"
// @Router /api/assign-enquete [post]
func (h *CaseHandler) AssignCase(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := h.caseService.Assign(&req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, "assignment updated")
}

// DeleteCase handles DELETE /api/donnees/:id
// @Summary Delete a case
// @Description Remove one case and its findings
// @Tags cases
// @Produce json
// @Param id path int true "Case ID"
// @Success 200 {object} handlers.Response "Case deleted"
// @Failure 400 {object} handlers.Response "Invalid case ID"
// @Failure 404 {object} handlers.Response "Case not found"
// @Router /api/donnees/{id} [delete]
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid case ID"})
		return
	}

	if err := h.caseService.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, "case deleted")
}
