// Package extract turns stored resume files into plain text. Extraction is
// best-effort by contract: backends degrade to empty text instead of failing,
// because "nothing extractable" is a normal pipeline outcome.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/adityakaushiik/CandidateManagement/internal/shared/telemetry"
)

// Format identifies a supported document format.
type Format int

const (
	// FormatUnknown covers every extension the pipeline does not handle.
	FormatUnknown Format = iota
	// FormatTXT is a plain text file.
	FormatTXT
	// FormatPDF is a PDF document.
	FormatPDF
	// FormatDOCX is an OOXML word processing document.
	FormatDOCX
	// FormatDOC is a legacy binary Word document.
	FormatDOC
)

// FormatFromPath maps a file extension to its Format, case-insensitively.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatTXT
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".doc":
		return FormatDOC
	default:
		return FormatUnknown
	}
}

// Text returns best-effort plain text for the file at path. It never returns
// an error; unsupported formats and backend failures yield empty text.
func Text(path string) string {
	switch FormatFromPath(path) {
	case FormatTXT:
		return textFromTXT(path)
	case FormatPDF:
		return textFromPDF(path)
	case FormatDOCX:
		return textFromDOCX(path)
	case FormatDOC:
		return textFromDOC(path)
	default:
		return ""
	}
}

func textFromTXT(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		telemetry.Warn("read txt", map[string]any{"path": path, "err": err.Error()})
		return ""
	}
	// Drop undecodable bytes rather than rejecting the file.
	return strings.ToValidUTF8(string(raw), "")
}

// textFromPDF extracts via github.com/ledongthuc/pdf. The library panics on
// some malformed files, so the recover boundary is part of the contract.
func textFromPDF(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Warn("pdf extract panic", map[string]any{"path": path, "panic": r})
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		telemetry.Warn("pdf open", map[string]any{"path": path, "err": err.Error()})
		return ""
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		telemetry.Warn("pdf plain text", map[string]any{"path": path, "err": err.Error()})
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		telemetry.Warn("pdf read text", map[string]any{"path": path, "err": err.Error()})
		return ""
	}
	return buf.String()
}

// textFromDOCX tries github.com/nguyenthenguyen/docx first and falls back to
// reading word/document.xml straight out of the archive.
func textFromDOCX(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Warn("docx extract panic", map[string]any{"path": path, "panic": r})
			text = ""
		}
	}()

	if r, err := docx.ReadDocxFile(path); err == nil {
		content := r.Editable().GetContent()
		_ = r.Close()
		if t := stripDocxXML(content); t != "" {
			return t
		}
	}

	raw, err := readDocxDocumentXML(path)
	if err != nil {
		telemetry.Warn("docx extract", map[string]any{"path": path, "err": err.Error()})
		return ""
	}
	return stripDocxXML(raw)
}

func textFromDOC(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Warn("doc extract panic", map[string]any{"path": path, "panic": r})
			text = ""
		}
	}()

	res, err := docconv.ConvertPath(path)
	if err != nil {
		telemetry.Warn("doc convert", map[string]any{"path": path, "err": err.Error()})
		return ""
	}
	return res.Body
}

func readDocxDocumentXML(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return "", errors.New("document.xml not found")
}

// stripDocxXML flattens document.xml into plain text, inserting line breaks
// at paragraph and break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
