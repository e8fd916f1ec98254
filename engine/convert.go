package engine

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/oklog/ulid/v2"
)

// PageImage is one rendered page, ready for the response body
type PageImage struct {
	Page   int    `json:"page"`
	Image  string `json:"image"` // data:image/png;base64,<...>
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ConversionResult is the full response for a successful upload
type ConversionResult struct {
	Success    bool        `json:"success"`
	TotalPages int         `json:"total_pages"`
	Images     []PageImage `json:"images"`
}

// convertPDF renders every page of the spooled PDF and encodes each one as a
// PNG data URI. Either the full page set comes back or the whole conversion
// fails, there are no partial results
func (serverHandler *ServerHandler) convertPDF(filename string) (*ConversionResult, error) {
	pages, err := serverHandler.Renderer.RenderPDF(filename)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	result := ConversionResult{
		Success:    true,
		TotalPages: len(pages),
		Images:     make([]PageImage, 0, len(pages)),
	}
	for i, page := range pages {
		dataURI, width, height, err := encodePageImage(page)
		if err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", i+1, err)
		}
		result.Images = append(result.Images, PageImage{
			Page:   i + 1,
			Image:  dataURI,
			Width:  width,
			Height: height,
		})
	}
	return &result, nil
}

// encodePageImage turns one rendered page into a data:image/png;base64 URI
// along with its pixel dimensions. Renderers hand back backend-specific pixel
// formats, so the page is cloned to NRGBA first for a predictable PNG
func encodePageImage(img image.Image) (dataURI string, width, height int, err error) {
	normalized := imaging.Clone(img)
	bounds := normalized.Bounds()

	var buf bytes.Buffer
	if err := png.Encode(&buf, normalized); err != nil {
		return "", 0, 0, fmt.Errorf("unable to encode PNG: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return "data:image/png;base64," + encoded, bounds.Dx(), bounds.Dy(), nil
}

// spoolUpload copies the uploaded file into the scratch directory under a
// ULID name so the renderer can work from a path. The caller removes the
// file when the request completes; the sweeper catches anything orphaned
func (serverHandler *ServerHandler) spoolUpload(file multipart.File) (string, error) {
	if err := os.MkdirAll(serverHandler.ServerConfig.ScratchPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create scratch directory: %w", err)
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy())
	path := filepath.Join(serverHandler.ServerConfig.ScratchPath, id.String()+".pdf")

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("unable to create scratch file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("unable to write scratch file: %w", err)
	}
	return path, nil
}
