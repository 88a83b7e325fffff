package ingest

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sheetlens/parse-cli/internal/model"
)

// decodeText interprets a buffer as UTF-8 text, honoring UTF-8/UTF-16 byte
// order marks. Exported spreadsheets frequently arrive as UTF-16 with a BOM.
func decodeText(buf []byte) (string, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	if bytes.HasPrefix(buf, []byte{0xFF, 0xFE}) || bytes.HasPrefix(buf, []byte{0xFE, 0xFF}) {
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(buf), decoder))
	if err != nil {
		return "", eris.Wrap(ErrDecodeFailure, "ingest: decode text")
	}
	if !utf8.Valid(decoded) {
		return "", eris.Wrap(ErrDecodeFailure, "ingest: text is not valid utf-8")
	}
	return string(decoded), nil
}

// readText converts unstructured text into a single-sheet table with one
// whole-line cell per row, ready for the line-oriented parsers.
func readText(buf []byte) (model.Workbook, error) {
	text, err := decodeText(buf)
	if err != nil {
		return model.Workbook{}, err
	}
	return model.Workbook{Sheets: []model.Sheet{{Name: csvSheetName, Table: linesToTable(text)}}}, nil
}

func linesToTable(text string) model.RawTable {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	table := make(model.RawTable, 0, len(lines))
	for _, line := range lines {
		table = append(table, []string{strings.TrimSpace(line)})
	}
	return table
}
