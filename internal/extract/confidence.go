package extract

import "github.com/sheetlens/parse-cli/internal/model"

// confidenceWeights lists the presence checks and their point values. The
// score measures extraction completeness, not statistical accuracy.
var confidenceWeights = []struct {
	present func(model.FinancialRecord) bool
	points  int
}{
	{func(r model.FinancialRecord) bool { return r.Revenue > 0 }, 20},
	{func(r model.FinancialRecord) bool { return r.NetIncome != 0 }, 20},
	{func(r model.FinancialRecord) bool { return r.TotalAssets > 0 }, 15},
	{func(r model.FinancialRecord) bool { return r.TotalLiabilities > 0 }, 15},
	{func(r model.FinancialRecord) bool { return r.Cash > 0 }, 10},
	{func(r model.FinancialRecord) bool { return r.AccountsReceivable > 0 }, 10},
	{func(r model.FinancialRecord) bool { return r.Inventory > 0 }, 10},
}

// Score assigns a 0-100 confidence from which expected fields are
// populated. A record where no check passes scores exactly 0.
func Score(rec model.FinancialRecord) int {
	score := 0
	for _, w := range confidenceWeights {
		if w.present(rec) {
			score += w.points
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}
