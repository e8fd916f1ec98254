package pdfrenderer

import (
	"testing"
)

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("ghostscript", 150)
	if err == nil {
		t.Fatal("Expected error for unknown backend name")
	}
	t.Logf("Correctly returned error: %v", err)
}

func TestNewFitzBackend(t *testing.T) {
	r, err := New("fitz", 150)
	if err != nil {
		t.Fatalf("Expected fitz renderer, got error: %v", err)
	}
	if _, ok := r.(*FitzRenderer); !ok {
		t.Errorf("Expected *FitzRenderer, got %T", r)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNewPDFiumBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping WebAssembly runtime setup in short mode")
	}

	r, err := New("pdfium", 150)
	if err != nil {
		t.Fatalf("Expected pdfium renderer, got error: %v", err)
	}
	defer r.Close()

	if _, ok := r.(*PDFiumRenderer); !ok {
		t.Errorf("Expected *PDFiumRenderer, got %T", r)
	}
}
