package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetlens/parse-cli/internal/model"
)

func TestExtractFieldsLabelScan(t *testing.T) {
	e := NewExtractor(nil)

	table := model.RawTable{
		{"Income Statement", ""},
		{"Revenue", "10,000"},
		{"Cost of Goods Sold", "6,000"},
		{"Net Income", "(1,500)"},
	}

	rec := e.ExtractFields(table)

	assert.Equal(t, 10000.0, rec.Revenue)
	assert.Equal(t, 6000.0, rec.CostOfGoodsSold)
	assert.Equal(t, -1500.0, rec.NetIncome)
}

func TestExtractFieldsMagnitudeConflict(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("larger value overwrites", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"Revenue", "100"},
			{"Total Revenue", "500"},
		})
		assert.Equal(t, 500.0, rec.Revenue)
	})

	t.Run("smaller value does not overwrite", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"Total Revenue", "500"},
			{"Revenue", "100"},
		})
		assert.Equal(t, 500.0, rec.Revenue)
	})

	t.Run("equal magnitude keeps first", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"Revenue", "500"},
			{"Net sales", "-500"},
		})
		assert.Equal(t, 500.0, rec.Revenue)
	})
}

func TestExtractFieldsAdjacentValue(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("right neighbor wins", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{{"200", "Revenue", "300"}})
		assert.Equal(t, 300.0, rec.Revenue)
	})

	t.Run("falls back to left neighbor", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{{"200", "Revenue", ""}})
		assert.Equal(t, 200.0, rec.Revenue)
	})

	t.Run("value embedded in label cell", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{{"Revenue 450"}})
		assert.Equal(t, 450.0, rec.Revenue)
	})
}

func TestExtractFieldsTotalInference(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("fills unset summary field from total row", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"Subtotal of all assets", "7,000"},
		})
		assert.Equal(t, 7000.0, rec.TotalAssets)
	})

	t.Run("does not overwrite a scanned value", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"Total assets", "9,000"},
			{"Running total of assets", "1"},
		})
		assert.Equal(t, 9000.0, rec.TotalAssets)
	})
}

func TestExtractFieldsRevenueGuess(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("large unlabeled number becomes revenue", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"misc", "250"},
			{"figure", "15,000"},
		})
		assert.Equal(t, 15000.0, rec.Revenue)
	})

	t.Run("suppressed when labels matched", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"Revenue", "800"},
			{"figure", "15,000"},
		})
		assert.Equal(t, 800.0, rec.Revenue)
	})

	t.Run("small numbers never guessed", func(t *testing.T) {
		rec := e.ExtractFields(model.RawTable{
			{"figure", "900"},
		})
		assert.Equal(t, 0.0, rec.Revenue)
	})
}

func TestExtractFieldsCustomVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab[FieldRevenue] = []string{"top line"}

	e := NewExtractor(vocab)
	rec := e.ExtractFields(model.RawTable{
		{"Top line", "3,000"},
		{"Revenue", "9,999"},
	})

	assert.Equal(t, 3000.0, rec.Revenue, "override replaces the default synonyms")
}
