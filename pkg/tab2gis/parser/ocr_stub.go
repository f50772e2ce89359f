//go:build !ocr

package parser

// recognize is the stub used when the "ocr" build tag is not set.
// Rebuild with -tags ocr (Tesseract required) to read table images.
func recognize(imageData []byte, lang string) (string, error) {
	return "", ErrOCRNotEnabled
}
