package model

import "strings"

// RawTable is a normalized grid of string cells produced from ingesting a
// file: ordered rows, each an ordered slice of trimmed cells, with "" for
// blanks. It is built once per parse invocation and treated as immutable.
type RawTable [][]string

// Sheet pairs a RawTable with the sheet name it came from.
type Sheet struct {
	Name  string
	Table RawTable
}

// Workbook is an ordered collection of named sheets. CSV and plain-text
// inputs produce a single-sheet workbook.
type Workbook struct {
	Sheets []Sheet
}

// First returns the first sheet's table, or nil for an empty workbook.
func (w Workbook) First() RawTable {
	if len(w.Sheets) == 0 {
		return nil
	}
	return w.Sheets[0].Table
}

// Joined returns all cells of the table lowercased and joined with single
// spaces. Used by keyword scans.
func (t RawTable) Joined() string {
	var b strings.Builder
	for _, row := range t {
		for _, c := range row {
			if c == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c)
		}
	}
	return strings.ToLower(b.String())
}
