// Package products implements the line-oriented product-list extractor: a
// structurally lighter counterpart to the financial metric engine for
// name/price/quantity triples in supplier lists and ad-hoc inventories.
package products

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sheetlens/parse-cli/internal/model"
)

// heuristicConfidence is the flat confidence for any non-empty heuristic
// extraction. The product scorer is deliberately binary, unlike the
// weighted financial scorer.
const heuristicConfidence = 60

// minNameLen is the shortest product name worth emitting.
const minNameLen = 3

// dashSplitRe splits "name - price - quantity" lines on hyphen, en-dash,
// or em-dash surrounded by spaces.
var dashSplitRe = regexp.MustCompile(`\s+[-–—]\s+`)

var (
	// symbolPriceRe matches "$12.50" / "€ 1,200".
	symbolPriceRe = regexp.MustCompile(`([$€£¥₹])\s*([\d,]+(?:\.\d+)?)`)
	// codePriceRe matches "12.50 USD" and "USD 12.50".
	codePriceRe    = regexp.MustCompile(`(?i)\b([\d,]+(?:\.\d+)?)\s*(USD|EUR|GBP|JPY|INR|AUD|CAD|CHF)\b`)
	codePriceRevRe = regexp.MustCompile(`(?i)\b(USD|EUR|GBP|JPY|INR|AUD|CAD|CHF)\s*([\d,]+(?:\.\d+)?)`)
	// quantityRe matches "7 pieces", "3pcs", "qty 12", "qty: 12".
	quantityRe    = regexp.MustCompile(`(?i)\b(\d+)\s*(pieces|piece|pcs|pc|units|unit|items|item)\b`)
	quantityRevRe = regexp.MustCompile(`(?i)\b(?:qty|quantity)\s*:?\s*(\d+)\b`)
	// bareNumberRe extracts a leading numeric amount from a dash segment.
	bareNumberRe = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
)

// currencySymbols maps detected symbols to ISO-ish codes.
var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₹": "INR",
}

// ExtractProducts parses free-form text into a product list. Each non-empty
// line is tried against the dash-delimited format first, then against the
// loose price/quantity token patterns; lines matching neither are skipped
// silently. Totals are recomputed from the emitted products.
func ExtractProducts(text string) model.ParsedProductList {
	list := model.ParsedProductList{
		RawText: text,
		Source:  model.SourceHeuristic,
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minNameLen {
			continue
		}

		if p, ok := parseDashLine(line); ok {
			list.Products = append(list.Products, p)
			continue
		}
		if p, ok := parseLooseLine(line); ok {
			list.Products = append(list.Products, p)
		}
	}

	list.Recompute()
	if len(list.Products) > 0 {
		list.Confidence = heuristicConfidence
	}
	return list
}

// parseDashLine handles the canonical "Metal Thermos - 100 USD - 7 Pieces"
// format. The middle segment must yield a positive price.
func parseDashLine(line string) (model.ProductRecord, bool) {
	parts := dashSplitRe.Split(line, -1)
	if len(parts) != 3 {
		return model.ProductRecord{}, false
	}

	name := strings.TrimSpace(parts[0])
	if len(name) < minNameLen {
		return model.ProductRecord{}, false
	}

	price, currency := parsePriceToken(parts[1])
	if price <= 0 {
		return model.ProductRecord{}, false
	}

	quantity := parseQuantityToken(parts[2])
	if quantity < 1 {
		quantity = 1
	}

	return model.ProductRecord{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Currency: currency,
	}, true
}

// parseLooseLine extracts a product from a line with a recognizable price
// or quantity token anywhere in it. The name is whatever remains after
// stripping the matched tokens; the line is rejected when neither token is
// present or the residual name is too short.
func parseLooseLine(line string) (model.ProductRecord, bool) {
	price, currency, priceMatch := findPrice(line)
	quantity, qtyMatch := findQuantity(line)

	if priceMatch == "" && qtyMatch == "" {
		return model.ProductRecord{}, false
	}
	if quantity < 1 {
		quantity = 1
	}

	name := line
	for _, matched := range []string{priceMatch, qtyMatch} {
		if matched != "" {
			name = strings.Replace(name, matched, " ", 1)
		}
	}
	name = strings.Trim(name, " \t-–—:,.")
	name = strings.Join(strings.Fields(name), " ")
	if len(name) <= 2 {
		return model.ProductRecord{}, false
	}

	return model.ProductRecord{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Currency: currency,
	}, true
}

// parsePriceToken reads a price plus optional currency from a dash segment
// such as "100 USD", "$99.95", or a bare "250".
func parsePriceToken(segment string) (float64, string) {
	if price, currency, matched := findPrice(segment); matched != "" {
		return price, currency
	}
	m := bareNumberRe.FindString(segment)
	if m == "" {
		return 0, model.DefaultCurrency
	}
	return parseNumber(m), model.DefaultCurrency
}

// findPrice locates the first currency-like numeric token. Returns the
// price, resolved currency code, and the exact matched substring ("" when
// no price token exists).
func findPrice(s string) (price float64, currency string, matched string) {
	if m := symbolPriceRe.FindStringSubmatch(s); m != nil {
		code, ok := currencySymbols[m[1]]
		if !ok {
			code = model.DefaultCurrency
		}
		return parseNumber(m[2]), code, m[0]
	}
	if m := codePriceRe.FindStringSubmatch(s); m != nil {
		return parseNumber(m[1]), strings.ToUpper(m[2]), m[0]
	}
	if m := codePriceRevRe.FindStringSubmatch(s); m != nil {
		return parseNumber(m[2]), strings.ToUpper(m[1]), m[0]
	}
	return 0, model.DefaultCurrency, ""
}

// findQuantity locates the first integer adjacent to a quantity keyword.
// Returns 0 and "" when the line has no quantity token.
func findQuantity(s string) (quantity int, matched string) {
	if m := quantityRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			return n, m[0]
		}
	}
	if m := quantityRevRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			return n, m[0]
		}
	}
	return 0, ""
}

// parseQuantityToken reads a quantity from a dash segment such as
// "7 Pieces" or a bare "7".
func parseQuantityToken(segment string) int {
	if q, matched := findQuantity(segment); matched != "" {
		return q
	}
	m := bareNumberRe.FindString(segment)
	if m == "" {
		return 0
	}
	n := parseNumber(m)
	if n < 1 || n != math.Trunc(n) {
		return 0
	}
	return int(n)
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
