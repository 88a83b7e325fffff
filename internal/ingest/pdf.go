package ingest

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sheetlens/parse-cli/internal/model"
)

// pdfPlaceholder is the fixed content returned for PDF uploads when text
// extraction is disabled. Downstream extractors find no metrics in it and
// produce an all-defaults, zero-confidence result, which the UI presents as
// "upload a spreadsheet instead".
const pdfPlaceholder = "PDF document received. Text extraction is not enabled for PDF uploads; convert the document to XLSX or CSV for full extraction."

// readPDF handles PDF buffers. With text extraction disabled it returns a
// placeholder table; with it enabled it pulls the text layer page by page.
// Scanned PDFs with no text layer fall back to the placeholder rather than
// failing the call.
func readPDF(buf []byte, opts Options) (model.Workbook, error) {
	if !opts.PDFTextExtraction {
		return model.Workbook{Sheets: []model.Sheet{{Name: "PDF", Table: linesToTable(pdfPlaceholder)}}}, nil
	}

	text, err := pdfText(buf)
	if err != nil {
		return model.Workbook{}, err
	}
	if strings.TrimSpace(text) == "" {
		zap.L().Debug("ingest: pdf has no text layer, using placeholder")
		text = pdfPlaceholder
	}
	return model.Workbook{Sheets: []model.Sheet{{Name: "PDF", Table: linesToTable(text)}}}, nil
}

// pdfText extracts the text layer of every page, one line per text row.
func pdfText(buf []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", eris.Wrap(ErrDecodeFailure, "ingest: open pdf")
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			zap.L().Warn("ingest: pdf page text extraction failed",
				zap.Int("page", pageNum),
				zap.Error(err),
			)
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
