// Package document extracts text from uploaded files.
package document

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable means the file could not be parsed as a PDF
var ErrUnreadable = errors.New("document: unreadable PDF")

// PDFExtractor reads the plain text layer of PDF files on disk
type PDFExtractor struct{}

// ExtractText returns the concatenated text of every page
func (PDFExtractor) ExtractText(path string) (text string, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("document: read text: %w", err)
	}
	return buf.String(), nil
}
