// Package extract implements the heuristic financial-metric extraction
// engine: sheet selection, label/value scanning against a synonym
// vocabulary, derived-value calculation, and confidence scoring.
package extract

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sheetlens/parse-cli/internal/model"
)

// Canonical metric field names. These double as the keys of the synonym
// vocabulary and of the JSON wire schema.
const (
	FieldRevenue                = "revenue"
	FieldCostOfGoodsSold        = "costOfGoodsSold"
	FieldGrossProfit            = "grossProfit"
	FieldOperatingExpenses      = "operatingExpenses"
	FieldOperatingIncome        = "operatingIncome"
	FieldNetIncome              = "netIncome"
	FieldTotalAssets            = "totalAssets"
	FieldTotalLiabilities       = "totalLiabilities"
	FieldTotalEquity            = "totalEquity"
	FieldCash                   = "cash"
	FieldAccountsReceivable     = "accountsReceivable"
	FieldInventory              = "inventory"
	FieldPropertyPlantEquipment = "propertyPlantEquipment"
	FieldAccountsPayable        = "accountsPayable"
	FieldLongTermDebt           = "longTermDebt"
)

// fieldNames is the scan order of the 15 numeric metric fields.
var fieldNames = []string{
	FieldRevenue,
	FieldCostOfGoodsSold,
	FieldGrossProfit,
	FieldOperatingExpenses,
	FieldOperatingIncome,
	FieldNetIncome,
	FieldTotalAssets,
	FieldTotalLiabilities,
	FieldTotalEquity,
	FieldCash,
	FieldAccountsReceivable,
	FieldInventory,
	FieldPropertyPlantEquipment,
	FieldAccountsPayable,
	FieldLongTermDebt,
}

// Vocabulary maps each canonical field to the ordered list of lowercase
// label phrases that identify it. Matching is by substring containment, so
// "consolidated net income" matches the "net income" synonym.
type Vocabulary map[string][]string

// DefaultVocabulary returns the built-in synonym dictionary. The returned
// map is fresh on every call so callers can modify their copy safely.
func DefaultVocabulary() Vocabulary {
	v := make(Vocabulary, len(defaultSynonyms))
	for field, syns := range defaultSynonyms {
		v[field] = append([]string(nil), syns...)
	}
	return v
}

var defaultSynonyms = Vocabulary{
	FieldRevenue: {
		"total revenue", "net sales", "total sales", "revenue", "sales", "turnover",
	},
	FieldCostOfGoodsSold: {
		"cost of goods sold", "cost of sales", "cost of revenue", "cogs", "direct costs",
	},
	FieldGrossProfit: {
		"gross profit", "gross margin", "gross income",
	},
	FieldOperatingExpenses: {
		"total operating expenses", "operating expenses", "operating costs", "opex",
		"selling, general and administrative", "sg&a",
	},
	FieldOperatingIncome: {
		"operating income", "operating profit", "income from operations",
		"operating earnings", "ebit",
	},
	FieldNetIncome: {
		"net income", "net profit", "net earnings", "net result",
		"profit after tax", "net profit after tax", "bottom line",
	},
	FieldTotalAssets: {
		"total assets",
	},
	FieldTotalLiabilities: {
		"total liabilities",
	},
	FieldTotalEquity: {
		"total equity", "shareholders' equity", "shareholders equity",
		"stockholders' equity", "stockholders equity", "owners' equity",
		"owners equity", "net worth",
	},
	FieldCash: {
		"cash and cash equivalents", "cash & cash equivalents", "cash equivalents",
		"cash on hand", "cash at bank", "cash",
	},
	FieldAccountsReceivable: {
		"accounts receivable", "trade receivables", "receivables", "debtors",
	},
	FieldInventory: {
		"inventories", "inventory", "stock on hand", "merchandise",
	},
	FieldPropertyPlantEquipment: {
		"property, plant and equipment", "property plant and equipment",
		"property and equipment", "fixed assets", "pp&e",
	},
	FieldAccountsPayable: {
		"accounts payable", "trade payables", "payables", "creditors",
	},
	FieldLongTermDebt: {
		"long-term debt", "long term debt", "long-term borrowings",
		"long term borrowings", "bonds payable", "notes payable",
	},
}

// LoadVocabulary reads a synonym vocabulary from a YAML file and merges it
// over the defaults: fields present in the file replace the built-in synonym
// list, fields absent keep theirs.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "vocabulary: read file")
	}

	var override map[string][]string
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, eris.Wrap(err, "vocabulary: unmarshal yaml")
	}

	vocab := DefaultVocabulary()
	for field, syns := range override {
		if _, known := defaultSynonyms[field]; !known {
			return nil, eris.Errorf("vocabulary: unknown field %q", field)
		}
		vocab[field] = syns
	}
	return vocab, nil
}

// fieldSlot returns a pointer to the named metric inside rec, or nil for an
// unknown field name.
func fieldSlot(rec *model.FinancialRecord, field string) *float64 {
	switch field {
	case FieldRevenue:
		return &rec.Revenue
	case FieldCostOfGoodsSold:
		return &rec.CostOfGoodsSold
	case FieldGrossProfit:
		return &rec.GrossProfit
	case FieldOperatingExpenses:
		return &rec.OperatingExpenses
	case FieldOperatingIncome:
		return &rec.OperatingIncome
	case FieldNetIncome:
		return &rec.NetIncome
	case FieldTotalAssets:
		return &rec.TotalAssets
	case FieldTotalLiabilities:
		return &rec.TotalLiabilities
	case FieldTotalEquity:
		return &rec.TotalEquity
	case FieldCash:
		return &rec.Cash
	case FieldAccountsReceivable:
		return &rec.AccountsReceivable
	case FieldInventory:
		return &rec.Inventory
	case FieldPropertyPlantEquipment:
		return &rec.PropertyPlantEquipment
	case FieldAccountsPayable:
		return &rec.AccountsPayable
	case FieldLongTermDebt:
		return &rec.LongTermDebt
	default:
		return nil
	}
}
