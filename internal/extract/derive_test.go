package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetlens/parse-cli/internal/model"
)

func TestFillDerived(t *testing.T) {
	t.Run("gross profit from revenue and cogs", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{
			Revenue:         1000,
			CostOfGoodsSold: 600,
		}, DeriveOptions{})
		assert.Equal(t, 400.0, rec.GrossProfit)
	})

	t.Run("operating income chains off derived gross profit", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{
			Revenue:           1000,
			CostOfGoodsSold:   600,
			OperatingExpenses: 150,
		}, DeriveOptions{})
		assert.Equal(t, 400.0, rec.GrossProfit)
		assert.Equal(t, 250.0, rec.OperatingIncome)
	})

	t.Run("equity from assets and liabilities", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{
			TotalAssets:      10000,
			TotalLiabilities: 4000,
		}, DeriveOptions{})
		assert.Equal(t, 6000.0, rec.TotalEquity)
	})

	t.Run("populated values are never reconciled", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{
			Revenue:         1000,
			CostOfGoodsSold: 600,
			GrossProfit:     999,
		}, DeriveOptions{})
		assert.Equal(t, 999.0, rec.GrossProfit)
	})

	t.Run("missing inputs leave target unset", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{Revenue: 1000}, DeriveOptions{})
		assert.Equal(t, 0.0, rec.GrossProfit)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FillDerived(model.FinancialRecord{
			Revenue:          1000,
			CostOfGoodsSold:  600,
			TotalAssets:      10000,
			TotalLiabilities: 4000,
			NetIncome:        -250,
		}, DeriveOptions{})
		twice := FillDerived(once, DeriveOptions{})
		assert.Equal(t, once, twice)
	})
}

func TestFillDerivedSignNormalization(t *testing.T) {
	t.Run("negatives become magnitudes by default", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{NetIncome: -250}, DeriveOptions{})
		assert.Equal(t, 250.0, rec.NetIncome)
	})

	t.Run("keep negatives opts out", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{NetIncome: -250}, DeriveOptions{KeepNegatives: true})
		assert.Equal(t, -250.0, rec.NetIncome)
	})

	t.Run("year is untouched", func(t *testing.T) {
		rec := FillDerived(model.FinancialRecord{Year: 2024, NetIncome: -5}, DeriveOptions{})
		assert.Equal(t, 2024, rec.Year)
	})
}
