package engine

import (
	"errors"
	"log/slog"

	"github.com/drummonds/pdfpages/config"
	"github.com/drummonds/pdfpages/engine/pdfrenderer"
	"github.com/labstack/echo/v4"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ErrUnsupportedFileType is returned when an upload is not named *.pdf.
// Callers can fix this by resubmitting the right file type
var ErrUnsupportedFileType = errors.New("only PDF files are supported")

// ProcessingError wraps any failure between reading the upload and encoding
// the last page. All such failures map to a single 500 response; the caller
// gets the underlying error text but no subtype distinction
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return "PDF processing failed: " + e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	Renderer     pdfrenderer.Renderer
}
