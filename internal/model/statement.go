package model

import "time"

// StatementType classifies a parsed financial statement.
type StatementType string

const (
	StatementIncome    StatementType = "income"
	StatementBalance   StatementType = "balance"
	StatementCashflow  StatementType = "cashflow"
)

// ParseStatementType normalizes a free-form statement type string.
// Anything outside the three known types maps to StatementIncome.
func ParseStatementType(s string) StatementType {
	switch StatementType(s) {
	case StatementBalance:
		return StatementBalance
	case StatementCashflow:
		return StatementCashflow
	default:
		return StatementIncome
	}
}

// Source identifies which extraction path produced a result.
type Source string

const (
	SourceModel     Source = "model"     // LLM-assisted extraction
	SourceHeuristic Source = "heuristic" // rule-based extraction
)

// FinancialRecord is the fixed output schema of the metric extractor.
// Every field is always a finite number: absent metrics are 0, never NaN.
// The record is not required to satisfy accounting identities — the derive
// pass only fills gaps, it never reconciles inconsistent populated values.
type FinancialRecord struct {
	Revenue                float64 `json:"revenue"`
	CostOfGoodsSold        float64 `json:"costOfGoodsSold"`
	GrossProfit            float64 `json:"grossProfit"`
	OperatingExpenses      float64 `json:"operatingExpenses"`
	OperatingIncome        float64 `json:"operatingIncome"`
	NetIncome              float64 `json:"netIncome"`
	TotalAssets            float64 `json:"totalAssets"`
	TotalLiabilities       float64 `json:"totalLiabilities"`
	TotalEquity            float64 `json:"totalEquity"`
	Cash                   float64 `json:"cash"`
	AccountsReceivable     float64 `json:"accountsReceivable"`
	Inventory              float64 `json:"inventory"`
	PropertyPlantEquipment float64 `json:"propertyPlantEquipment"`
	AccountsPayable        float64 `json:"accountsPayable"`
	LongTermDebt           float64 `json:"longTermDebt"`
	Year                   int     `json:"year"`
	Quarter                string  `json:"quarter,omitempty"`
}

// NewFinancialRecord returns a record with every metric at its default:
// 0 for amounts, the current calendar year for Year.
func NewFinancialRecord() FinancialRecord {
	return FinancialRecord{Year: time.Now().Year()}
}

// ParsedStatement is the final result of a financial parse call. Created once
// per invocation and never mutated after being returned.
type ParsedStatement struct {
	CompanyName   string          `json:"companyName"`
	StatementType StatementType   `json:"statementType"`
	Period        string          `json:"period"`
	Data          FinancialRecord `json:"data"`
	RawText       string          `json:"rawText"`
	Confidence    int             `json:"confidence"`
	Source        Source          `json:"source"`
}

// DefaultCompanyName is used when no company name could be determined.
const DefaultCompanyName = "Unknown Company"
