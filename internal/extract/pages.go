package extract

import (
	"os"
	"regexp"

	"github.com/ledongthuc/pdf"

	"github.com/adityakaushiik/CandidateManagement/internal/shared/telemetry"
)

// pageObjectPattern matches PDF page object markers without matching the
// page-tree /Pages node.
var pageObjectPattern = regexp.MustCompile(`/Type\s*/Page\b`)

// CountPages returns the page count of a PDF, or nil for non-PDF input or
// when both counting methods fail. It never panics.
func CountPages(path string) *int {
	if FormatFromPath(path) != FormatPDF {
		return nil
	}
	if n, ok := countPagesReader(path); ok {
		return &n
	}
	if n, ok := countPagesRaw(path); ok {
		return &n
	}
	return nil
}

func countPagesReader(path string) (n int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Warn("pdf page count panic", map[string]any{"path": path, "panic": r})
			n, ok = 0, false
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, false
	}
	defer f.Close()

	pages := reader.NumPage()
	if pages <= 0 {
		return 0, false
	}
	return pages, true
}

// countPagesRaw scans the raw bytes for page object markers. It is the
// fallback for files the reader rejects but that are still mostly well formed.
func countPagesRaw(path string) (int, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	matches := pageObjectPattern.FindAll(raw, -1)
	if len(matches) == 0 {
		return 0, false
	}
	return len(matches), true
}
