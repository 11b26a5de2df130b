// Package types provides common type aliases and utilities.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// FormatMoney renders a monetary value as "{symbol}{amount}" with comma
// thousands separators and a fixed number of decimal places.
// Rounding is half away from zero (decimal.StringFixed).
func FormatMoney(amount Money, symbol string, precision int32) string {
	if precision < 0 {
		precision = 0
	}
	fixed := amount.StringFixed(precision)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	out := symbol + groupThousands(intPart) + fracPart
	if neg {
		out = symbol + "-" + groupThousands(intPart) + fracPart
	}
	return out
}

// FormatAmount is the tolerant variant of FormatMoney for loosely-typed
// inputs (template extras, overrides). A nil amount yields an empty string;
// a non-numeric string passes through unchanged.
func FormatAmount(amount any, symbol string, precision int32) string {
	if amount == nil {
		return ""
	}

	switch v := amount.(type) {
	case decimal.Decimal:
		return FormatMoney(v, symbol, precision)
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return FormatMoney(*v, symbol, precision)
	case decimal.NullDecimal:
		if !v.Valid {
			return ""
		}
		return FormatMoney(v.Decimal, symbol, precision)
	case float64:
		return FormatMoney(decimal.NewFromFloat(v), symbol, precision)
	case float32:
		return FormatMoney(decimal.NewFromFloat32(v), symbol, precision)
	case int:
		return FormatMoney(decimal.NewFromInt(int64(v)), symbol, precision)
	case int64:
		return FormatMoney(decimal.NewFromInt(v), symbol, precision)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return v
		}
		return FormatMoney(d, symbol, precision)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseMoney reverses FormatMoney: strips the symbol and separators and
// parses the remainder.
func ParseMoney(s, symbol string) (Money, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, symbol))
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}

// groupThousands inserts commas into a bare digit string ("1234567" -> "1,234,567").
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
