//go:build ocr

package parser

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// recognize runs Tesseract on image data and returns the recognized text.
// Page segmentation mode 6 treats the image as one uniform block of text,
// which keeps table rows on separate lines.
func recognize(imageData []byte, lang string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
