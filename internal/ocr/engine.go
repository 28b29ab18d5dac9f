// Package ocr extracts text from page images using the Tesseract engine.
package ocr

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Engine recognizes text on a single raster image.
type Engine interface {
	// Recognize runs OCR over PNG-encoded image bytes with a language hint.
	Recognize(ctx context.Context, png []byte, language string) (string, error)
	// Available reports whether the engine can run at all.
	Available() bool
}

// lookPath is the exec.LookPath implementation used by Available.
// Tests may replace it to simulate a missing Tesseract binary.
var lookPath = exec.LookPath

// TesseractEngine shells out to the tesseract binary. Recognition uses
// full automatic page segmentation (--psm 3).
type TesseractEngine struct {
	binary string
}

// NewTesseractEngine creates an engine for the given binary name or path.
// An empty binary defaults to "tesseract" on PATH.
func NewTesseractEngine(binary string) *TesseractEngine {
	if binary == "" {
		binary = "tesseract"
	}
	return &TesseractEngine{binary: binary}
}

// Available returns true when the tesseract binary can be resolved.
func (e *TesseractEngine) Available() bool {
	_, err := lookPath(e.binary)
	return err == nil
}

// Recognize writes the image to a temp file and captures tesseract's stdout.
func (e *TesseractEngine) Recognize(ctx context.Context, png []byte, language string) (string, error) {
	tmp, err := os.CreateTemp("", "flipbook-ocr-*.png")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(png); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	args := []string{tmpPath, "stdout", "--psm", "3"}
	if language != "" {
		args = append(args, "-l", language)
	}

	out, err := exec.CommandContext(ctx, e.binary, args...).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
