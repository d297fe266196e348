package content_test

import (
	"testing"

	"loanpages/internal/content"
)

func TestHumanize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"tunbridge-wells", "Tunbridge Wells"},
		{"southend_on_sea", "Southend On Sea"},
		{"kent", "Kent"},
		{"", ""},
		{"  spaced  out  ", "Spaced Out"},
	}
	for _, c := range cases {
		if got := content.Humanize(c.in); got != c.want {
			t.Fatalf("Humanize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatGBP(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "£0"},
		{950, "£950"},
		{1000, "£1,000"},
		{250000, "£250,000"},
		{1450000, "£1,450,000"},
	}
	for _, c := range cases {
		if got := content.FormatGBP(c.in); got != c.want {
			t.Fatalf("FormatGBP(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
