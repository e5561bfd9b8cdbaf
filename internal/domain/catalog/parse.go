package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice reads a pt-BR or plain decimal money input ("R$ 1.200,50", "12,5", "12.5").
// Unparseable or negative input becomes 0.
func ParsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(leadingNumber(s, true))
	if err != nil || d.IsNegative() {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// ParseQuantity reads the leading integer of raw ("3.7" -> 3, "12abc" -> 12).
// Unparseable or negative input becomes 0.
func ParseQuantity(raw string) int {
	s := leadingNumber(strings.TrimSpace(raw), false)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// leadingNumber returns the longest numeric prefix of s, like JavaScript's parseFloat/parseInt.
func leadingNumber(s string, allowDot bool) string {
	end := 0
	seenDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' && i == 0:
		case r == '.' && allowDot && !seenDot:
			seenDot = true
		default:
			return trimDanglingDot(s[:end])
		}
		end = i + 1
	}
	return trimDanglingDot(s[:end])
}

func trimDanglingDot(s string) string {
	return strings.TrimSuffix(s, ".")
}
