package controller

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hortiexam/hortiexam/internal/document"
	"github.com/hortiexam/hortiexam/internal/dto"
)

// ImportUploadHandler godoc
// @Summary Import questions from an uploaded document
// @Description Upload a .txt or .xlsx document containing "Frage:"/"Lösung:" marked question blocks. The file is decoded into paragraphs, normalized into candidates and inserted into the pool. The temporary upload is removed afterwards regardless of outcome.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to import"
// @Param category formData string false "Category for imported questions"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /import/upload [post]
func (ctrl *Controller) ImportUploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file provided"})
		return
	}

	decoder, err := document.DecoderForFile(fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tmpPath := filepath.Join(ctrl.cfg.UploadDir, uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		log.Error().Err(err).Str("path", tmpPath).Msg("Failed to store uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to store uploaded file"})
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Warn().Err(err).Str("path", tmpPath).Msg("Failed to remove temporary upload")
		}
	}()

	f, err := os.Open(tmpPath)
	if err != nil {
		log.Error().Err(err).Str("path", tmpPath).Msg("Failed to reopen uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	lines, err := decoder.Paragraphs(f)
	if err != nil {
		log.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to decode uploaded document")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to decode document: " + err.Error()})
		return
	}

	parsed, imported, err := ctrl.importSvc.ImportParagraphs(lines, c.PostForm("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ImportResultResponse{Parsed: parsed, Imported: imported})
}

// ImportExtractHandler godoc
// @Summary Import questions via the text-extraction provider
// @Description Send raw document text to the configured extraction provider (e.g. Gemini) and import the validated candidates. A provider failure aborts the whole batch before anything is inserted.
// @Tags import
// @Accept json
// @Produce json
// @Param request body dto.ExtractRequest true "Raw text and target category"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /import/extract [post]
func (ctrl *Controller) ImportExtractHandler(c *gin.Context) {
	var req dto.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	parsed, imported, err := ctrl.importSvc.ExtractAndImport(c.Request.Context(), req.Text, req.Category)
	if err != nil {
		log.Error().Err(err).Msg("Text extraction import failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ImportResultResponse{Parsed: parsed, Imported: imported})
}
