package currency

import (
	"math"
	"strconv"
	"strings"
)

// FormatIDR renders an amount in rupiah, e.g. 25000 -> "Rp 25.000".
// Amounts are rounded to whole rupiah; IDR carries no sub-unit here.
func FormatIDR(amount float64) string {
	neg := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("Rp ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}

	return b.String()
}
