package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberRe extracts the first numeric substring, including scientific
// notation, from otherwise unparsable cell text.
var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`)

// currencyStripper removes the symbols and separators that accounting
// exports wrap around numbers. Thousands separators are commas; the decimal
// point is preserved.
var currencyStripper = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "", "₹", "", "₩", "",
	",", "", " ", "", " ", "",
)

// ParseAmount normalizes a cell value to a float64. It strips currency
// symbols and thousands separators, resolves parenthesized numbers to
// negatives, percentage suffixes to fractions, and scientific notation. As
// a last resort it regex-extracts the first numeric substring. Unparsable
// text yields 0 — absence of a value is never an error here.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Accounting convention: (1,234.56) means -1234.56.
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	percent := strings.HasSuffix(strings.TrimSpace(s), "%")
	if percent {
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	}

	s = strings.TrimSpace(currencyStripper.Replace(s))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		m := numberRe.FindString(s)
		if m == "" {
			return 0
		}
		v, err = strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
	}

	if negative {
		v = -v
	}
	if percent {
		v /= 100
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
