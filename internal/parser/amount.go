package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPatterns are tried in order, most specific first: currency-tagged
// notations before the bare dollar sign, labelled Spanish phrasings last.
// This keeps reference numbers and dates from being read as amounts.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)RD\$\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)DOP\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)\$\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)monto[:\s]*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)valor[:\s]*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)cantidad[:\s]*([\d,]+\.?\d*)`),
}

// maxAmount caps what counts as a plausible transaction: 100,000,000.
var maxAmount = decimal.New(1, 8)

// ExtractAmount finds the first in-bounds monetary value in content. A match
// that parses to zero or beyond the cap does not stop the scan; later
// patterns still get a chance.
func ExtractAmount(content string) (decimal.Decimal, bool) {
	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(content)
		if match == nil {
			continue
		}

		raw := strings.ReplaceAll(match[1], ",", "")
		raw = strings.TrimSuffix(raw, ".")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}

		if amount.IsPositive() && amount.LessThan(maxAmount) {
			return amount, true
		}
	}

	return decimal.Decimal{}, false
}
