package docgen

import (
	"os"
	"strings"
	"testing"
)

func TestExportWritesFile(t *testing.T) {
	e := NewExporter(t.TempDir())

	path, err := e.Export("ДОГОВОР АРЕНДЫ\n\n1. Предмет договора.\n2. Срок аренды.", 42)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
	if !strings.HasSuffix(path, ".docx") {
		t.Errorf("path %q should end with .docx", path)
	}
	if !strings.Contains(path, "contract_42_") {
		t.Errorf("path %q should be keyed by user id", path)
	}
}

func TestExportDistinctPathsPerCall(t *testing.T) {
	e := NewExporter(t.TempDir())

	first, err := e.Export("текст", 7)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	second, err := e.Export("текст", 7)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if first == second {
		t.Error("consecutive exports must not overwrite each other")
	}
}
