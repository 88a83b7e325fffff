package extract

import (
	"math"

	"github.com/sheetlens/parse-cli/internal/model"
)

// DeriveOptions configures the derived-value pass.
type DeriveOptions struct {
	// KeepNegatives skips the sign-normalization post-pass, preserving
	// negative values such as genuine net losses. The default (false)
	// matches the historical behavior of storing absolute magnitudes.
	KeepNegatives bool
}

// FillDerived fills unset metrics from accounting identities and then
// normalizes sign. Each identity applies only when the target field is
// exactly 0 and every input is non-zero — populated values are never
// reconciled, only gaps are filled.
func FillDerived(rec model.FinancialRecord, opts DeriveOptions) model.FinancialRecord {
	if rec.GrossProfit == 0 && rec.Revenue != 0 && rec.CostOfGoodsSold != 0 {
		rec.GrossProfit = rec.Revenue - rec.CostOfGoodsSold
	}
	if rec.OperatingIncome == 0 && rec.GrossProfit != 0 && rec.OperatingExpenses != 0 {
		rec.OperatingIncome = rec.GrossProfit - rec.OperatingExpenses
	}
	if rec.TotalEquity == 0 && rec.TotalAssets != 0 && rec.TotalLiabilities != 0 {
		rec.TotalEquity = rec.TotalAssets - rec.TotalLiabilities
	}

	if !opts.KeepNegatives {
		normalizeSigns(&rec)
	}
	return rec
}

// normalizeSigns replaces negative values with their absolute value on
// every numeric field except Year. This discards the loss/contra-account
// sign; DeriveOptions.KeepNegatives opts out.
func normalizeSigns(rec *model.FinancialRecord) {
	for _, field := range fieldNames {
		slot := fieldSlot(rec, field)
		*slot = math.Abs(*slot)
	}
}
