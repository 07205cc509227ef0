package content

import (
	"strconv"
	"strings"
)

// FormatInt renders n with Spanish thousands separators: 45180 -> "45.180".
func FormatInt(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatDecimal renders f with a comma decimal separator and at most two
// decimals, dropping trailing zeros: 2.29 -> "2,29", 25.8 -> "25,8",
// 3227 -> "3.227".
func FormatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	n, _ := strconv.Atoi(whole)
	out := FormatInt(n)
	if n == 0 && strings.HasPrefix(whole, "-") {
		out = "-" + out
	}
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return out
	}
	return out + "," + frac
}

// PositionLabel is the "(#n)" suffix shown next to a keyword.
func (k Keyword) PositionLabel() string {
	return k.Term + " (#" + strconv.Itoa(k.Position) + ")"
}
