package amount

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalid is returned when a token is not a number under either decimal convention.
var ErrInvalid = errors.New("invalid amount")

const maxFractionDigits = 2

// Bounds on accepted amounts. Rescaling a value like 1e999999999 to two
// fraction digits would build a billion-digit number.
const (
	maxExponent = 20
	maxDigits   = 30
)

// Style is a pair of decimal and grouping separators.
type Style struct {
	Decimal string
	Group   string
}

var (
	// StylePoint is the en-US convention: 1,234.56
	StylePoint = Style{Decimal: ".", Group: ","}
	// StyleComma is the es-ES convention: 1.234,56
	StyleComma = Style{Decimal: ",", Group: "."}
)

// StyleFor returns the display convention selected by the comma-decimal flag.
func StyleFor(commaDecimal bool) Style {
	if commaDecimal {
		return StyleComma
	}
	return StylePoint
}

// Parse reads an amount token. The token is first read with "." as the
// decimal point, then again with its first "," replaced by ".". Thousands
// separators are not stripped, so "1.234,56" fails. A sign is only accepted
// at the start or after an exponent marker, and values outside
// ±1e20 or with more than 30 digits are rejected.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" || misplacedSign(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		d, err = decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	}
	if err != nil || !inRange(d) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return d, nil
}

func misplacedSign(s string) bool {
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] != 'e' && s[i-1] != 'E' {
			return true
		}
	}
	return false
}

func inRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxExponent && exp >= -maxExponent && d.NumDigits() <= maxDigits
}

// Format renders v with thousands grouping and 0-2 fraction digits.
func Format(v decimal.Decimal, commaDecimal bool) string {
	return FormatStyle(v, StyleFor(commaDecimal))
}

// FormatOptional is Format for a value that may be absent; absent renders as "".
func FormatOptional(v *decimal.Decimal, commaDecimal bool) string {
	if v == nil {
		return ""
	}
	return Format(*v, commaDecimal)
}

// FormatStyle renders v using an explicit separator pair.
func FormatStyle(v decimal.Decimal, style Style) string {
	r := v.Round(maxFractionDigits)
	neg := r.IsNegative()
	fixed := r.Abs().StringFixed(maxFractionDigits)

	intPart, frac, _ := strings.Cut(fixed, ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(group(intPart, style.Group))
	if frac != "" {
		b.WriteString(style.Decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// group inserts sep every three digits from the right.
func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
