package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sheetlens/parse-cli/internal/model"
)

// readWorkbook converts every sheet of an XLSX buffer into a RawTable in
// row-major order. Blank cells become empty strings; no date/number coercion
// happens here — cell display values are preserved for the numeric parser.
func readWorkbook(buf []byte) (model.Workbook, error) {
	f, err := xlsx.OpenBinary(buf)
	if err != nil {
		return model.Workbook{}, eris.Wrap(ErrDecodeFailure, "ingest: open xlsx")
	}

	sheets := make([]model.Sheet, len(f.Sheets))

	// Sheets convert independently; large workbooks benefit from doing it
	// concurrently. Order is preserved by writing into fixed slots.
	var g errgroup.Group
	for i, sheet := range f.Sheets {
		i, sheet := i, sheet
		g.Go(func() error {
			sheets[i] = model.Sheet{
				Name:  sheet.Name,
				Table: sheetToTable(sheet),
			}
			return nil
		})
	}
	_ = g.Wait()

	return model.Workbook{Sheets: sheets}, nil
}

func sheetToTable(sheet *xlsx.Sheet) model.RawTable {
	table := make(model.RawTable, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = strings.TrimSpace(cell.String())
		}
		table = append(table, cells)
	}
	return table
}
