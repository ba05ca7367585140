package handlers

import (
	"net/http"
	"strconv"

	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VPNHandler handles HTTP requests for OpenVPN profile delivery
type VPNHandler struct {
	vpnService service.VPNServiceInterface
}

// NewVPNHandler creates a new VPN handler
func NewVPNHandler(vpnService service.VPNServiceInterface) *VPNHandler {
	return &VPNHandler{
		vpnService: vpnService,
	}
}

// VPNConfigResponse reports where an investigator's profile lives
type VPNConfigResponse struct {
	ConfigPath string `json:"config_path"`
	Message    string `json:"message"`
}

// GetVPNConfig handles GET /api/enqueteurs/:id/vpn-config
// @Summary Get an investigator's VPN profile
// @Description Generate the profile from the uploaded template if it is not on disk yet
// @Tags vpn
// @Produce json
// @Param id path int true "Investigator ID"
// @Success 200 {object} handlers.Response "Profile location"
// @Failure 400 {object} handlers.Response "Invalid investigator ID"
// @Failure 404 {object} handlers.Response "No template uploaded"
// @Router /api/enqueteurs/{id}/vpn-config [get]
func (h *VPNHandler) GetVPNConfig(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid investigator ID"})
		return
	}

	path, err := h.vpnService.EnsureConfig(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, VPNConfigResponse{
		ConfigPath: path,
		Message:    "vpn config ready",
	})
}

// UploadTemplate handles POST /api/vpn-template
// @Summary Upload the OpenVPN client template
// @Description Store the .ovpn template future profiles are generated from
// @Tags vpn
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Client template"
// @Success 200 {object} handlers.Response "Template stored"
// @Failure 400 {object} handlers.Response "Missing file"
// @Router /api/vpn-template [post]
func (h *VPNHandler) UploadTemplate(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "no file provided"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	defer file.Close()

	if _, err := h.vpnService.SaveTemplate(file); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, "vpn template saved")
}

// GetTemplateStatus handles GET /api/vpn-template
// @Summary Check whether a template is uploaded
// @Tags vpn
// @Produce json
// @Success 200 {object} handlers.Response "Template status"
// @Router /api/vpn-template [get]
func (h *VPNHandler) GetTemplateStatus(c *gin.Context) {
	exists, path := h.vpnService.TemplateExists()
	respondOK(c, gin.H{
		"template_exists": exists,
		"template_path":   path,
	})
}
