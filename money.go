package ipoboard

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the currency every formatted amount in the dashboard
// uses.
const DisplayCurrency = money.INR

// ParseAmount extracts the numeric value from a display-formatted currency
// string such as "₹49,350" or "45530.15 Cr". It takes the first contiguous
// numeric run, ignoring the currency symbol and thousands separators.
// Unparseable input yields zero rather than an error; aggregates must not
// fail on a single malformed row.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	started := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
			started = true
		case r == ',' && started:
			// thousands separator inside the run
		default:
			if started {
				goto done
			}
		}
	}
done:
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders a major-unit value with the dashboard's currency
// conventions ("₹3,500.00").
func FormatAmount(v decimal.Decimal) string {
	cur := money.GetCurrency(DisplayCurrency)
	minor := v.Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), DisplayCurrency).Display()
}
