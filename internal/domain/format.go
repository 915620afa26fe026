package domain

import "strconv"

// FormatPrice renders a price for human-facing copy: integral amounts get
// thousands separators ("18,999"), fractional ones keep two decimals.
func FormatPrice(v float64) string {
	if v != float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return groupThousands(strconv.FormatInt(int64(v), 10))
}

// FormatRating renders a seller rating without trailing zeros ("4.5", "4").
func FormatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func groupThousands(digits string) string {
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var out []byte
	lead := len(digits) % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < len(digits); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
