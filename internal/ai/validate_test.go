package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetlens/parse-cli/internal/model"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"numeric string", "1200", 1200},
		{"formatted string", "$1,200.50", 1200.50},
		{"percent string", "45%", 45},
		{"prose string", "about a thousand", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toNumber(tt.in))
		})
	}
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0, clampConfidence(-5))
	assert.Equal(t, 85, clampConfidence(85.7))
	assert.Equal(t, 100, clampConfidence(250))
}

func TestCoerceStatement(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		raw := map[string]any{
			"companyName":   "Acme Corp",
			"statementType": "balance",
			"period":        "Q2 2024",
			"confidence":    90.0,
			"revenue":       "1,000",
			"netIncome":     -250.0,
			"year":          2024.0,
			"quarter":       "Q2",
		}

		stmt := coerceStatement(raw, "raw text")

		assert.Equal(t, "Acme Corp", stmt.CompanyName)
		assert.Equal(t, model.StatementBalance, stmt.StatementType)
		assert.Equal(t, "Q2 2024", stmt.Period)
		assert.Equal(t, 1000.0, stmt.Data.Revenue)
		assert.Equal(t, -250.0, stmt.Data.NetIncome)
		assert.Equal(t, 2024, stmt.Data.Year)
		assert.Equal(t, "Q2", stmt.Data.Quarter)
		assert.Equal(t, 90, stmt.Confidence)
		assert.Equal(t, "raw text", stmt.RawText)
		assert.Equal(t, model.SourceModel, stmt.Source)
	})

	t.Run("defaults for absent keys", func(t *testing.T) {
		stmt := coerceStatement(map[string]any{}, "")

		assert.Equal(t, model.DefaultCompanyName, stmt.CompanyName)
		assert.Equal(t, model.StatementIncome, stmt.StatementType)
		assert.Equal(t, 0, stmt.Confidence)
		assert.Equal(t, 0.0, stmt.Data.Revenue)
		assert.Positive(t, stmt.Data.Year, "year falls back to the current year")
	})

	t.Run("zero year does not override default", func(t *testing.T) {
		stmt := coerceStatement(map[string]any{"year": 0.0}, "")
		assert.Positive(t, stmt.Data.Year)
	})
}

func TestCoerceProducts(t *testing.T) {
	raw := map[string]any{
		"confidence": 95.0,
		"products": []any{
			map[string]any{"name": "Metal Thermos", "price": 100.0, "quantity": 7.0, "currency": "usd"},
			map[string]any{"name": "", "price": 5.0},
			map[string]any{"name": "Pen", "price": -2.0},
			"not an object",
		},
	}

	list := coerceProducts(raw, "raw")

	require.Len(t, list.Products, 2)
	assert.Equal(t, model.ProductRecord{Name: "Metal Thermos", Price: 100, Quantity: 7, Currency: "USD"}, list.Products[0])
	assert.Equal(t, model.ProductRecord{Name: "Pen", Price: 0, Quantity: 1, Currency: "USD"}, list.Products[1])
	assert.Equal(t, 8, list.TotalItems)
	assert.Equal(t, 700.0, list.TotalValue)
	assert.Equal(t, 95, list.Confidence)
	assert.Equal(t, model.SourceModel, list.Source)
}

func TestSchemas(t *testing.T) {
	t.Run("statement accepts string metrics", func(t *testing.T) {
		assert.NoError(t, statementSchema.Validate(map[string]any{"revenue": "1,200"}))
	})

	t.Run("statement rejects array payload", func(t *testing.T) {
		assert.Error(t, statementSchema.Validate([]any{"nope"}))
	})

	t.Run("products requires the list", func(t *testing.T) {
		assert.Error(t, productSchema.Validate(map[string]any{"confidence": 50.0}))
		assert.NoError(t, productSchema.Validate(map[string]any{"products": []any{}}))
	})
}
