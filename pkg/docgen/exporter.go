// Package docgen serializes final document text into a .docx file for
// delivery as a chat attachment.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/google/uuid"
)

type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export writes text as a .docx document, one plain paragraph per line, and
// returns the file path. Headings, tables and numbering are not preserved.
func (e *Exporter) Export(text string, userID int64) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	doc := docx.New().WithDefaultTheme()
	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph().AddText(line)
	}

	name := fmt.Sprintf("contract_%d_%s.docx", userID, uuid.NewString()[:8])
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create document file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write document: %w", err)
	}

	return path, nil
}
