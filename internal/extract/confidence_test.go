package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetlens/parse-cli/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		rec  model.FinancialRecord
		want int
	}{
		{"empty record", model.FinancialRecord{}, 0},
		{"revenue only", model.FinancialRecord{Revenue: 100}, 20},
		{"net loss still counts", model.FinancialRecord{NetIncome: -50}, 20},
		{"negative revenue does not count", model.FinancialRecord{Revenue: -100}, 0},
		{"balance sheet trio", model.FinancialRecord{TotalAssets: 1, TotalLiabilities: 1, Cash: 1}, 40},
		{
			"everything populated caps at 100",
			model.FinancialRecord{
				Revenue: 1, NetIncome: 1, TotalAssets: 1, TotalLiabilities: 1,
				Cash: 1, AccountsReceivable: 1, Inventory: 1,
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.rec))
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	base := model.FinancialRecord{Revenue: 100}
	richer := base
	richer.Cash = 50

	assert.GreaterOrEqual(t, Score(richer), Score(base))
}
