package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sheetlens/parse-cli/internal/model"
)

// sheetKeywords is the fixed keyword set used to score how
// finance-relevant a sheet is.
var sheetKeywords = []string{
	"revenue", "sales", "income", "assets", "liabilities", "equity",
	"cash", "profit", "expenses", "cost", "debt", "receivable", "payable",
}

// SelectBestSheet picks the sheet with the strictly highest keyword density.
// Ties keep the earlier sheet in workbook order, and a workbook where every
// sheet scores zero falls back to the first sheet — a deliberate fallback,
// since downstream confidence scoring surfaces the weak signal.
func SelectBestSheet(wb model.Workbook) model.RawTable {
	if len(wb.Sheets) == 0 {
		return nil
	}

	best := 0
	bestScore := scoreSheet(wb.Sheets[0].Table)
	for i := 1; i < len(wb.Sheets); i++ {
		if score := scoreSheet(wb.Sheets[i].Table); score > bestScore {
			best, bestScore = i, score
		}
	}

	zap.L().Debug("selected sheet",
		zap.String("sheet", wb.Sheets[best].Name),
		zap.Int("keyword_score", bestScore),
		zap.Int("sheet_count", len(wb.Sheets)),
	)
	return wb.Sheets[best].Table
}

// scoreSheet counts occurrences of the financial keyword set across the
// sheet's flattened, lowercased text.
func scoreSheet(table model.RawTable) int {
	joined := table.Joined()
	score := 0
	for _, kw := range sheetKeywords {
		score += strings.Count(joined, kw)
	}
	return score
}
