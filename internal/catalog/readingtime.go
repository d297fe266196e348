package catalog

import (
	"math"
	"strings"

	"loanpages/internal/domain"
)

const wordsPerMinute = 200

// ReadingTime estimates minutes to read a guide body: whitespace-delimited
// tokens across every heading and paragraph, divided by the reading rate,
// rounded to nearest, never below 1.
func ReadingTime(sections []domain.GuideSection) int {
	words := 0
	for _, s := range sections {
		words += len(strings.Fields(s.Heading))
		for _, p := range s.Paragraphs {
			words += len(strings.Fields(p))
		}
	}
	m := int(math.Round(float64(words) / wordsPerMinute))
	if m < 1 {
		m = 1
	}
	return m
}
