package pdfrenderer

import (
	"fmt"
	"image"
)

// Renderer defines the interface for PDF to image conversion
type Renderer interface {
	// RenderPDF converts all pages of a PDF file to images
	// Returns a slice of images, one per page, in document order
	RenderPDF(filename string) ([]image.Image, error)

	// Close cleans up any resources used by the renderer
	Close() error
}

// New creates a renderer for the given backend name at the given DPI.
// Supported backends are "pdfium" (pure Go, no CGo) and "fitz" (CGo and MuPDF)
func New(backend string, dpi int) (Renderer, error) {
	switch backend {
	case "pdfium":
		return NewPDFiumRenderer(dpi)
	case "fitz":
		return NewFitzRenderer(dpi)
	default:
		return nil, fmt.Errorf("unknown renderer backend %q", backend)
	}
}
