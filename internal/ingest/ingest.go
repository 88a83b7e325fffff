// Package ingest converts raw file buffers into normalized row/cell tables.
package ingest

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sheetlens/parse-cli/internal/model"
)

// Media types accepted at the ingestion boundary.
const (
	MimePDF  = "application/pdf"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeXLS  = "application/vnd.ms-excel"
	MimeCSV  = "text/csv"
	MimeText = "text/plain"
)

// Sentinel errors for the ingestion failure taxonomy. Callers distinguish
// them with eris.Is: UnsupportedFormat is a boundary rejection before any
// parsing, DecodeFailure means the buffer does not match its declared type.
var (
	ErrUnsupportedFormat = eris.New("ingest: unsupported media type")
	ErrDecodeFailure     = eris.New("ingest: buffer cannot be decoded as declared format")
)

// Options configures ingestion behavior.
type Options struct {
	// PDFTextExtraction enables real PDF text-layer extraction. When false
	// (the default), PDF buffers yield a fixed placeholder table.
	PDFTextExtraction bool
}

// Ingest converts a raw buffer with a declared media type into a workbook of
// RawTables, one per sheet. CSV, plain text, and PDF inputs yield a single
// sheet. Pure transform: no side effects, fresh output per call.
func Ingest(buf []byte, mimeType string, opts Options) (model.Workbook, error) {
	switch normalizeMime(mimeType) {
	case MimeXLSX:
		return readWorkbook(buf)
	case MimeXLS:
		// Legacy .xls is accepted at the boundary; many files declared as
		// xls are OOXML underneath, so attempt the workbook parser before
		// rejecting the buffer.
		wb, err := readWorkbook(buf)
		if err != nil {
			return model.Workbook{}, eris.Wrap(ErrDecodeFailure, "ingest: xls")
		}
		return wb, nil
	case MimeCSV:
		return readCSV(buf)
	case MimeText:
		return readText(buf)
	case MimePDF:
		return readPDF(buf, opts)
	default:
		return model.Workbook{}, eris.Wrapf(ErrUnsupportedFormat, "ingest: %q", mimeType)
	}
}

// normalizeMime strips parameters ("text/csv; charset=utf-8") and lowercases.
func normalizeMime(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// Flatten renders a table back to delimited text, one row per line with
// cells joined by single spaces. Used as the rawText audit payload and as
// the input to the line-oriented and model-assisted extractors.
func Flatten(t model.RawTable) string {
	var b strings.Builder
	for _, row := range t {
		line := strings.TrimSpace(strings.Join(row, " "))
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}
