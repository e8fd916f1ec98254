package engine

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractText pulls the plain text out of every page of the PDF. Pages whose
// text streams cannot be decoded are skipped with a warning rather than
// failing the whole document
func extractText(pdfData []byte) (string, error) {
	reader := bytes.NewReader(pdfData)

	pdfReader, err := pdf.NewReader(reader, int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}

	totalPages := pdfReader.NumPage()
	var fullText strings.Builder

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			Logger.Warn("Failed to extract text from page", "page", pageNum, "error", err)
			continue
		}

		fullText.WriteString(text)
	}

	return fullText.String(), nil
}
