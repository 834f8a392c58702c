package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("plain text, not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := PDFExtractor{}.ExtractText(path)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := PDFExtractor{}.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrUnreadable)
}
