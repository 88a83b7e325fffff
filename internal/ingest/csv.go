package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sheetlens/parse-cli/internal/model"
)

// csvSheetName is the synthetic sheet name for single-table inputs.
const csvSheetName = "Sheet1"

// readCSV parses a delimited text buffer into a single-sheet workbook.
// The delimiter is sniffed from the first line (comma, semicolon, or tab).
func readCSV(buf []byte) (model.Workbook, error) {
	text, err := decodeText(buf)
	if err != nil {
		return model.Workbook{}, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	var table model.RawTable
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Workbook{}, eris.Wrap(ErrDecodeFailure, "ingest: read csv row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		table = append(table, record)
	}

	return model.Workbook{Sheets: []model.Sheet{{Name: csvSheetName, Table: table}}}, nil
}

// sniffDelimiter picks the delimiter with the most occurrences on the first
// non-empty line. Comma wins ties.
func sniffDelimiter(text string) rune {
	line := text
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	best, bestCount := ',', strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best
}
