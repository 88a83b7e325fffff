package model

// ProductRecord is a single extracted product line.
type ProductRecord struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`    // >= 0
	Quantity int     `json:"quantity"` // >= 1, defaults to 1 when absent
	Currency string  `json:"currency"` // ISO-ish code, defaults to "USD"
}

// ParsedProductList is the final result of a product-list parse call.
// TotalItems and TotalValue are always recomputed from Products via
// Recompute, never set independently.
type ParsedProductList struct {
	Products   []ProductRecord `json:"products"`
	TotalItems int             `json:"totalItems"`
	TotalValue float64         `json:"totalValue"`
	RawText    string          `json:"rawText"`
	Confidence int             `json:"confidence"`
	Source     Source          `json:"source"`
}

// Recompute refreshes TotalItems and TotalValue from the product sequence.
func (l *ParsedProductList) Recompute() {
	l.TotalItems = 0
	l.TotalValue = 0
	for _, p := range l.Products {
		l.TotalItems += p.Quantity
		l.TotalValue += p.Price * float64(p.Quantity)
	}
}

// DefaultCurrency is assumed when a product line carries no currency marker.
const DefaultCurrency = "USD"
