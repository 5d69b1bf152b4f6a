package utils

import (
	"strconv"
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// GroupIndian formats an integer with Indian digit grouping (12,34,56,789)
func GroupIndian(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		digits = strings.Join(parts, ",") + "," + tail
	}

	if neg {
		return "-" + digits
	}
	return digits
}

// FormatINR renders a rupee amount for display, e.g. ₹12,50,000
func FormatINR(m models.Money) string {
	s := GroupIndian(int64(m))
	if strings.HasPrefix(s, "-") {
		return "-₹" + s[1:]
	}
	return "₹" + s
}

// FormatLakh renders large amounts in lakh/crore shorthand, e.g. ₹12.5 Lakh
func FormatLakh(m models.Money) string {
	v := float64(m)
	switch {
	case v >= 1e7:
		return "₹" + strconv.FormatFloat(v/1e7, 'f', -1, 64) + " Crore"
	case v >= 1e5:
		return "₹" + strconv.FormatFloat(float64(int64(v/1e3))/100, 'f', -1, 64) + " Lakh"
	default:
		return FormatINR(m)
	}
}
