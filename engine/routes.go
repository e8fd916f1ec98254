package engine

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/drummonds/pdfpages/internal/build"
	"github.com/labstack/echo/v4"
)

// ConvertPDF handles a PDF uploaded from the frontend and returns every page
// as an inline PNG image
// @Summary Convert a PDF to page images
// @Description Upload a PDF file and receive all pages rendered as base64 PNG data URIs
// @Tags Conversion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file to convert"
// @Success 200 {object} ConversionResult "Rendered pages"
// @Failure 400 {object} map[string]string "Not a PDF file"
// @Failure 500 {object} map[string]string "Processing failure"
// @Router /upload [post]
func (serverHandler *ServerHandler) ConvertPDF(context echo.Context) error {
	file, fileHeader, err := context.Request().FormFile("file")
	if err != nil {
		return context.JSON(http.StatusBadRequest, map[string]string{"detail": "No PDF file provided"})
	}
	defer file.Close()

	if !isPDFFilename(fileHeader.Filename) {
		Logger.Debug("Rejected upload with wrong extension", "filename", fileHeader.Filename)
		return context.JSON(http.StatusBadRequest, map[string]string{"detail": ErrUnsupportedFileType.Error()})
	}

	Logger.Info("Processing PDF upload", "filename", fileHeader.Filename, "size", fileHeader.Size)

	path, err := serverHandler.spoolUpload(file)
	if err != nil {
		Logger.Error("Unable to spool uploaded file", "filename", fileHeader.Filename, "error", err)
		return processingFailure(context, err)
	}
	defer os.Remove(path)

	result, err := serverHandler.convertPDF(path)
	if err != nil {
		Logger.Error("Conversion failed", "filename", fileHeader.Filename, "error", err)
		return processingFailure(context, err)
	}

	Logger.Info("Conversion complete", "filename", fileHeader.Filename, "pages", result.TotalPages)
	return context.JSON(http.StatusOK, result)
}

// ExtractText returns the plain text of all pages of an uploaded PDF
// @Summary Extract text from a PDF
// @Description Upload a PDF file and receive its concatenated plain text
// @Tags Conversion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file to read"
// @Success 200 {object} map[string]string "Extracted text"
// @Failure 400 {object} map[string]string "Not a PDF file"
// @Failure 500 {object} map[string]string "Processing failure"
// @Router /extract-text [post]
func (serverHandler *ServerHandler) ExtractText(context echo.Context) error {
	file, fileHeader, err := context.Request().FormFile("file")
	if err != nil {
		return context.JSON(http.StatusBadRequest, map[string]string{"detail": "No PDF file provided"})
	}
	defer file.Close()

	if !isPDFFilename(fileHeader.Filename) {
		Logger.Debug("Rejected upload with wrong extension", "filename", fileHeader.Filename)
		return context.JSON(http.StatusBadRequest, map[string]string{"detail": ErrUnsupportedFileType.Error()})
	}

	pdfData, err := io.ReadAll(file)
	if err != nil {
		Logger.Error("Unable to read uploaded file", "filename", fileHeader.Filename, "error", err)
		return processingFailure(context, err)
	}

	text, err := extractText(pdfData)
	if err != nil {
		Logger.Error("Text extraction failed", "filename", fileHeader.Filename, "error", err)
		return processingFailure(context, err)
	}

	return context.JSON(http.StatusOK, map[string]string{"text": text})
}

// Health is the liveness check
// @Summary Health check
// @Description Always returns a static ok payload
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /health [get]
func (serverHandler *ServerHandler) Health(context echo.Context) error {
	return context.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetAboutInfo returns information about the application configuration
// @Summary Get application information
// @Description Retrieve the build version and active renderer configuration
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Application information"
// @Router /about [get]
func (serverHandler *ServerHandler) GetAboutInfo(c echo.Context) error {
	aboutInfo := map[string]interface{}{
		"version":     build.Version,
		"renderer":    serverHandler.ServerConfig.RendererType,
		"dpi":         serverHandler.ServerConfig.RenderDPI,
		"maxUploadMB": serverHandler.ServerConfig.MaxUploadMB,
		"scratchPath": serverHandler.ServerConfig.ScratchPath,
	}
	return c.JSON(http.StatusOK, aboutInfo)
}

// isPDFFilename checks the name extension only, case-insensitively. Content
// is never sniffed; a mislabeled file is the renderer's to reject
func isPDFFilename(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// processingFailure collapses every non-validation failure into one generic
// 500 response carrying the underlying error text
func processingFailure(context echo.Context, err error) error {
	var procErr *ProcessingError
	if !errors.As(err, &procErr) {
		procErr = &ProcessingError{Err: err}
	}
	return context.JSON(http.StatusInternalServerError, map[string]string{"detail": procErr.Error()})
}
