// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"wallet/internal/model"
)

// FormatAmount formats a positive magnitude with grouping and the
// configured currency symbol. e.g., 1234.5 -> "$1,234.50"
func FormatAmount(currency string, v float64) string {
	return currency + groupThousands(fmt.Sprintf("%.2f", v))
}

// FormatSigned formats a balance-style value, keeping the sign in
// front of the currency symbol. e.g., -42 -> "-$42.00"
func FormatSigned(currency string, v float64) string {
	if v < 0 {
		return "-" + FormatAmount(currency, -v)
	}
	return FormatAmount(currency, v)
}

// FormatPercent formats a 0-100 percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatMonth renders a YYYY-MM bucket key as "Jan 2006".
func FormatMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

// ShortID returns the display prefix of a transaction id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// TypeMark returns the +/- marker shown next to amounts in listings.
func TypeMark(typ model.Type) string {
	if typ == model.Expense {
		return "-"
	}
	return "+"
}

// groupThousands inserts comma separators into the integer part of an
// already formatted decimal string.
func groupThousands(s string) string {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}
