package content

import "strings"

// Humanize turns a URL slug into a display name: separators become spaces
// and each word is capitalized. Used as the fallback when a key has no
// catalog match, so a page for an unknown slug still reads cleanly.
func Humanize(slug string) string {
	s := strings.TrimSpace(slug)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatGBP renders whole pounds with thousands separators, e.g. 250000
// -> "£250,000".
func FormatGBP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := []byte(formatInt(amount))
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("£")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(d)
	}
	return b.String()
}

func formatInt(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
