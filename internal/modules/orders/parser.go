package orders

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// priceMarker prefixes the token that terminates each pasted segment,
// e.g. "2 Coca Cola v10,00".
const priceMarker = "v"

// ParseBulk turns a block of pasted text into line items. Each segment is
// "<qty> <name...> v<price>": the first unconsumed token must be a positive
// integer, the price terminator is the next token starting with the marker
// whose remainder parses as a non-negative decimal (comma accepted as the
// fractional separator), and everything in between becomes the product name.
//
// Malformed quantity tokens are discarded one at a time. A segment whose
// name would be empty is rejected and the scan resumes after its terminator.
// If no terminator exists before end of input the whole remaining scan is
// abandoned. skipped counts the segments that were dropped; callers only see
// "N items added" vs "nothing added".
func ParseBulk(text string) (items []Item, skipped int) {
	tokens := strings.Fields(text)

	i := 0
	for i < len(tokens) {
		qty, err := strconv.Atoi(tokens[i])
		if err != nil || qty <= 0 {
			skipped++
			i++
			continue
		}

		priceIdx := -1
		var price decimal.Decimal
		for j := i + 1; j < len(tokens); j++ {
			if p, ok := parsePriceToken(tokens[j]); ok {
				priceIdx = j
				price = p
				break
			}
		}
		if priceIdx == -1 {
			// no terminator left: nothing past this point can match
			skipped++
			break
		}

		name := strings.Join(tokens[i+1:priceIdx], " ")
		if name == "" {
			skipped++
			i = priceIdx + 1
			continue
		}

		items = append(items, Item{Product: name, Quantity: qty, Price: price})
		i = priceIdx + 1
	}

	return items, skipped
}

// parsePriceToken recognizes a price terminator: marker prefix plus a
// non-negative decimal, with at most one comma normalized to a dot.
// Negative prices are rejected here on purpose; the old frontend let them
// through by accident.
func parsePriceToken(tok string) (decimal.Decimal, bool) {
	if !strings.HasPrefix(tok, priceMarker) {
		return decimal.Decimal{}, false
	}
	raw := strings.Replace(tok[len(priceMarker):], ",", ".", 1)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}
