// Package format renders calculator results for display.
package format

import "strings"

// Thousands inserts a comma between each group of three digits in the
// integer part of a decimal numeral, e.g. "-1234567.89" becomes
// "-1,234,567.89". A leading plus sign is dropped and an empty integer part
// is written as 0; the fraction is kept as given, including a trailing dot.
// Text that is not a numeral, such as an error message, is returned trimmed
// but otherwise unchanged.
func Thousands(s string) string {
	s = strings.TrimSpace(s)
	if !numeric(s) {
		return s
	}
	var sign string
	switch s[0] {
	case '-':
		sign, s = "-", s[1:]
	case '+':
		s = s[1:]
	}
	ip, fp, dot := strings.Cut(s, ".")
	if ip == "" {
		ip = "0"
	}
	var b strings.Builder
	b.Grow(len(sign) + len(ip) + len(ip)/3 + len(fp) + 1)
	b.WriteString(sign)
	lead := len(ip) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(ip[:lead])
	for i := lead; i < len(ip); i += 3 {
		b.WriteByte(',')
		b.WriteString(ip[i : i+3])
	}
	if dot {
		b.WriteByte('.')
		b.WriteString(fp)
	}
	return b.String()
}

// numeric reports whether s is an optionally signed numeral of the form
// digits, digits.digits*, or .digits.
func numeric(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	ip, fp, dot := strings.Cut(s, ".")
	if !digits(ip) || !digits(fp) {
		return false
	}
	if ip == "" {
		return dot && fp != ""
	}
	return true
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
