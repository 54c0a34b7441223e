package services

import (
	"strconv"
	"strings"
)

// FormatAmount formats a number the way an en-US locale does for display:
// thousands separated by commas, at most three fraction digits, trailing
// fraction zeros dropped (1234.5 -> "1,234.5", 650 -> "650").
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := strconv.FormatFloat(amount, 'f', 3, 64)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := strings.TrimRight(parts[1], "0")

	result := applyThousandsGrouping(intPart)
	if decPart != "" {
		result += "." + decPart
	}
	if negative && result != "0" {
		result = "-" + result
	}
	return result
}

// FormatUSD prefixes FormatAmount with a dollar sign, placing the minus sign
// before it for negative amounts.
func FormatUSD(amount float64) string {
	s := FormatAmount(amount)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// applyThousandsGrouping inserts a comma every three digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
