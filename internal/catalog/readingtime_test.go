package catalog_test

import (
	"strings"
	"testing"

	"loanpages/internal/catalog"
	"loanpages/internal/domain"
)

func sectionsWithWords(n int) []domain.GuideSection {
	// one word in the heading, the rest in a paragraph
	return []domain.GuideSection{
		{
			Heading:    "Intro",
			Paragraphs: []string{strings.TrimSpace(strings.Repeat("word ", n-1))},
		},
	}
}

func TestReadingTime_RoundsToNearest(t *testing.T) {
	if got := catalog.ReadingTime(sectionsWithWords(420)); got != 2 {
		t.Fatalf("420 words: want 2 minutes, got %d", got)
	}
}

func TestReadingTime_FlooredAtOne(t *testing.T) {
	if got := catalog.ReadingTime(sectionsWithWords(40)); got != 1 {
		t.Fatalf("40 words: want 1 minute, got %d", got)
	}
	if got := catalog.ReadingTime(nil); got != 1 {
		t.Fatalf("no sections: want 1 minute, got %d", got)
	}
}

func TestReadingTime_CountsHeadings(t *testing.T) {
	secs := []domain.GuideSection{
		{Heading: strings.TrimSpace(strings.Repeat("head ", 150)), Paragraphs: []string{strings.TrimSpace(strings.Repeat("body ", 150))}},
	}
	// 300 words total -> round(1.5) -> 2
	if got := catalog.ReadingTime(secs); got != 2 {
		t.Fatalf("300 words incl headings: want 2, got %d", got)
	}
}
