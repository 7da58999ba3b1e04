package format

import (
	"strings"

	"github.com/edufin/proforma/pkg/dec"
)

// Currency returns a currency string with thousands separators and two
// decimal places (e.g., "-1,234.56"). Amounts never lose precision: the
// decimal is rendered, not converted through a float.
func Currency(amount dec.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	out := intPart + "." + decPart
	if negative {
		return "-" + out
	}
	return out
}
