package extract

import (
	"math"
	"strings"

	"github.com/sheetlens/parse-cli/internal/model"
)

// largeValueFloor and revenueGuessFloor bound the last-resort numeric
// fallback: cells above largeValueFloor are considered candidate amounts,
// and the first candidate above revenueGuessFloor becomes the revenue guess.
const (
	largeValueFloor   = 1000
	revenueGuessFloor = 10000
)

// Extractor scans normalized tables for financial metrics using a synonym
// vocabulary. The vocabulary is fixed at construction, so tests can swap in
// a custom one. Extraction is a pure function of the input table.
type Extractor struct {
	vocab Vocabulary
}

// NewExtractor creates an Extractor. A nil vocabulary selects the built-in
// defaults.
func NewExtractor(vocab Vocabulary) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Extractor{vocab: vocab}
}

// ExtractFields scans every cell of the table for label/value pairs and
// returns a FinancialRecord. Three passes run in order: the synonym scan,
// total/subtotal row inference for still-unset summary fields, and a
// large-number fallback when the sheet yielded neither revenue nor assets.
// Missing data is represented as 0, never as an error.
func (e *Extractor) ExtractFields(table model.RawTable) model.FinancialRecord {
	rec := model.NewFinancialRecord()

	e.scanLabels(table, &rec)
	e.inferTotals(table, &rec)
	e.guessRevenue(table, &rec)

	return rec
}

// scanLabels is the primary pass: every cell is a candidate label, matched
// by substring against each field's synonyms. The associated value is taken
// from the cell to the right, then the cell to the left, then the label
// cell itself (value embedded with the label); the first non-zero wins.
// When a field already holds a value, a new match overwrites it only with a
// strictly larger absolute magnitude, which biases summary rows over
// line-item rows.
func (e *Extractor) scanLabels(table model.RawTable, rec *model.FinancialRecord) {
	for _, row := range table {
		for j, cell := range row {
			if cell == "" {
				continue
			}
			label := strings.ToLower(cell)

			for _, field := range fieldNames {
				if !e.matches(field, label) {
					continue
				}
				value := adjacentValue(row, j)
				if value == 0 {
					continue
				}
				slot := fieldSlot(rec, field)
				if math.Abs(value) > math.Abs(*slot) {
					*slot = value
				}
			}
		}
	}
}

// matches reports whether the lowercased label text contains any synonym of
// the field.
func (e *Extractor) matches(field, label string) bool {
	for _, syn := range e.vocab[field] {
		if strings.Contains(label, syn) {
			return true
		}
	}
	return false
}

// adjacentValue resolves a label cell's value: right neighbor, then left
// neighbor, then the label cell itself. First non-zero candidate wins.
func adjacentValue(row []string, labelIdx int) float64 {
	if labelIdx+1 < len(row) {
		if v := ParseAmount(row[labelIdx+1]); v != 0 {
			return v
		}
	}
	if labelIdx > 0 {
		if v := ParseAmount(row[labelIdx-1]); v != 0 {
			return v
		}
	}
	return ParseAmount(row[labelIdx])
}

// totalInferenceTargets maps row-text keywords to the summary field they
// imply during the total/subtotal pass.
var totalInferenceTargets = []struct {
	keywords []string
	field    string
}{
	{[]string{"revenue", "sales"}, FieldRevenue},
	{[]string{"assets"}, FieldTotalAssets},
	{[]string{"liabilities"}, FieldTotalLiabilities},
	{[]string{"equity"}, FieldTotalEquity},
}

// inferTotals is the secondary pass: rows mentioning "total" or "subtotal"
// are re-scanned, and if the row also names one of the summary concepts
// whose field is still unset, the first positive numeric cell in the row is
// assigned to it.
func (e *Extractor) inferTotals(table model.RawTable, rec *model.FinancialRecord) {
	for _, row := range table {
		joined := strings.ToLower(strings.Join(row, " "))
		if !strings.Contains(joined, "total") && !strings.Contains(joined, "subtotal") {
			continue
		}

		for _, target := range totalInferenceTargets {
			if !containsAny(joined, target.keywords) {
				continue
			}
			slot := fieldSlot(rec, target.field)
			if *slot != 0 {
				continue
			}
			if v := firstPositiveValue(row); v > 0 {
				*slot = v
			}
		}
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func firstPositiveValue(row []string) float64 {
	for _, cell := range row {
		if v := ParseAmount(cell); v > 0 {
			return v
		}
	}
	return 0
}

// guessRevenue is the tertiary, last-resort pass for sparse sheets with no
// recognizable labels: when both revenue and total assets are still unset,
// it scans for large numeric cells and takes the first one above the
// revenue floor as a low-confidence revenue guess. No correctness guarantee
// — the confidence scorer keeps such results near the bottom of the scale.
func (e *Extractor) guessRevenue(table model.RawTable, rec *model.FinancialRecord) {
	if rec.Revenue != 0 || rec.TotalAssets != 0 {
		return
	}

	for _, row := range table {
		for _, cell := range row {
			v := ParseAmount(cell)
			if v <= largeValueFloor {
				continue
			}
			if v > revenueGuessFloor {
				rec.Revenue = v
				return
			}
		}
	}
}
