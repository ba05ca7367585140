package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FileHandler handles HTTP requests for EOS exchange file ingest
type FileHandler struct {
	importService service.ImportServiceInterface
}

// NewFileHandler creates a new file handler
func NewFileHandler(importService service.ImportServiceInterface) *FileHandler {
	return &FileHandler{
		importService: importService,
	}
}

// ImportFile handles POST /parse
// @Summary Import an exchange file
// @Description Parse a fixed-width EOS file and store its cases. A duplicate file name yields 409 with the existing file's summary.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Exchange file"
// @Success 200 {object} handlers.Response "Import result"
// @Failure 400 {object} handlers.Response "Missing or empty file"
// @Failure 409 {object} handlers.Response "File already imported"
// @Router /parse [post]
func (h *FileHandler) ImportFile(c *gin.Context) {
	filename, file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.importService.Import(filename, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrImportFileExists) {
			// The front end offers a replace; give it the existing file
			// so the operator knows what they would overwrite.
			info, infoErr := h.importService.FileInfo(filename)
			if infoErr != nil {
				respondServiceError(c, err)
				return
			}
			c.JSON(http.StatusConflict, Response{
				Success: false,
				Error:   err.Error(),
				Data:    info,
			})
			return
		}
		respondServiceError(c, err)
		return
	}

	respondOK(c, result)
}

// ReplaceFile handles POST /replace-file
// @Summary Replace a previously imported file
// @Description Drop the previous import with the same name, cases included, and ingest the new content
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Exchange file"
// @Success 200 {object} handlers.Response "Import result"
// @Failure 400 {object} handlers.Response "Missing or empty file"
// @Router /replace-file [post]
func (h *FileHandler) ReplaceFile(c *gin.Context) {
	filename, file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.importService.Replace(filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, result)
}

// DeleteFile handles DELETE /api/fichiers/:id
// @Summary Delete an imported file
// @Description Remove an import and every case that came from it
// @Tags files
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} handlers.Response "File deleted"
// @Failure 400 {object} handlers.Response "Invalid file ID"
// @Failure 404 {object} handlers.Response "File not found"
// @Router /api/fichiers/{id} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid file ID"})
		return
	}

	if err := h.importService.DeleteFile(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, "file deleted")
}

// openUpload extracts the multipart "file" part. Responds with 400 and
// returns ok=false when the part is missing.
func (h *FileHandler) openUpload(c *gin.Context) (string, multipart.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "no file provided"})
		return "", nil, false
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return "", nil, false
	}
	return header.Filename, file, true
}
