package ai

import (
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sheetlens/parse-cli/internal/model"
)

// Schemas are deliberately tolerant: metrics may arrive as numbers or as
// formatted strings ("$1,200"), and unknown keys are ignored. They exist to
// reject structurally hopeless payloads (arrays, scalars, products that are
// not a list) before coercion, not to enforce strict typing — the coercion
// layer is the single point where the loose shape becomes a typed record.
var statementSchema = jsonschema.MustCompileString("statement.json", `{
	"type": "object",
	"properties": {
		"companyName":   {"type": ["string", "null"]},
		"statementType": {"type": ["string", "null"]},
		"period":        {"type": ["string", "null"]},
		"confidence":    {"type": ["number", "string", "null"]},
		"revenue":       {"type": ["number", "string", "null"]},
		"netIncome":     {"type": ["number", "string", "null"]},
		"totalAssets":   {"type": ["number", "string", "null"]},
		"year":          {"type": ["number", "string", "null"]},
		"quarter":       {"type": ["string", "null"]}
	}
}`)

var productSchema = jsonschema.MustCompileString("products.json", `{
	"type": "object",
	"properties": {
		"products": {
			"type": "array",
			"items": {"type": "object"}
		},
		"confidence": {"type": ["number", "string", "null"]}
	},
	"required": ["products"]
}`)

// numberCleaner strips the formatting the model sometimes echoes back from
// source documents.
var numberCleaner = strings.NewReplacer("$", "", ",", "", "%", "")

// toNumber coerces a loosely-typed JSON value to a float64. Non-numeric and
// unparsable values become 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(numberCleaner.Replace(n)), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// clampConfidence bounds a confidence value to [0, 100].
func clampConfidence(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

// coerceStatement converts a validated loose object into a ParsedStatement.
// The untyped shape never leaks past this function.
func coerceStatement(raw map[string]any, rawText string) *model.ParsedStatement {
	rec := model.NewFinancialRecord()
	rec.Revenue = toNumber(raw["revenue"])
	rec.CostOfGoodsSold = toNumber(raw["costOfGoodsSold"])
	rec.GrossProfit = toNumber(raw["grossProfit"])
	rec.OperatingExpenses = toNumber(raw["operatingExpenses"])
	rec.OperatingIncome = toNumber(raw["operatingIncome"])
	rec.NetIncome = toNumber(raw["netIncome"])
	rec.TotalAssets = toNumber(raw["totalAssets"])
	rec.TotalLiabilities = toNumber(raw["totalLiabilities"])
	rec.TotalEquity = toNumber(raw["totalEquity"])
	rec.Cash = toNumber(raw["cash"])
	rec.AccountsReceivable = toNumber(raw["accountsReceivable"])
	rec.Inventory = toNumber(raw["inventory"])
	rec.PropertyPlantEquipment = toNumber(raw["propertyPlantEquipment"])
	rec.AccountsPayable = toNumber(raw["accountsPayable"])
	rec.LongTermDebt = toNumber(raw["longTermDebt"])
	if year := int(toNumber(raw["year"])); year > 0 {
		rec.Year = year
	}
	rec.Quarter = toString(raw["quarter"])

	companyName := toString(raw["companyName"])
	if companyName == "" {
		companyName = model.DefaultCompanyName
	}

	return &model.ParsedStatement{
		CompanyName:   companyName,
		StatementType: model.ParseStatementType(toString(raw["statementType"])),
		Period:        toString(raw["period"]),
		Data:          rec,
		RawText:       rawText,
		Confidence:    clampConfidence(toNumber(raw["confidence"])),
		Source:        model.SourceModel,
	}
}

// coerceProducts converts a validated loose object into a ParsedProductList.
// Entries without a usable name are dropped; totals are recomputed from the
// surviving products.
func coerceProducts(raw map[string]any, rawText string) *model.ParsedProductList {
	list := &model.ParsedProductList{
		RawText:    rawText,
		Confidence: clampConfidence(toNumber(raw["confidence"])),
		Source:     model.SourceModel,
	}

	items, _ := raw["products"].([]any)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := toString(obj["name"])
		if name == "" {
			continue
		}
		price := toNumber(obj["price"])
		if price < 0 {
			price = 0
		}
		quantity := int(toNumber(obj["quantity"]))
		if quantity < 1 {
			quantity = 1
		}
		currency := strings.ToUpper(toString(obj["currency"]))
		if currency == "" {
			currency = model.DefaultCurrency
		}
		list.Products = append(list.Products, model.ProductRecord{
			Name:     name,
			Price:    price,
			Quantity: quantity,
			Currency: currency,
		})
	}

	list.Recompute()
	return list
}
