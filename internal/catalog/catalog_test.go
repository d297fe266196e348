package catalog_test

import (
	"testing"

	"loanpages/internal/catalog"
)

func TestDefaultCatalog_Invariants(t *testing.T) {
	c := catalog.New()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(c.Regions()) == 0 || len(c.Services()) == 0 || len(c.Guides()) == 0 {
		t.Fatalf("default catalog has empty tables")
	}

	n := 0
	for _, r := range c.Regions() {
		if r.Slug == "" || r.Name == "" {
			t.Fatalf("region missing slug or name: %+v", r)
		}
		for _, l := range r.Localities {
			if l.RegionSlug != r.Slug {
				t.Fatalf("locality %s back-reference = %q, want %q", l.Slug, l.RegionSlug, r.Slug)
			}
			n += len(c.Services())
		}
	}
	if c.PageCount() != n {
		t.Fatalf("PageCount = %d, want %d", c.PageCount(), n)
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := catalog.New()

	if _, ok := c.Region("kent"); !ok {
		t.Fatalf("expected region kent")
	}
	if l, ok := c.Locality("kent", "maidstone"); !ok || l.Name != "Maidstone" {
		t.Fatalf("locality kent/maidstone: ok=%v l=%+v", ok, l)
	}
	// locality slugs are scoped to their region
	if _, ok := c.Locality("essex", "maidstone"); ok {
		t.Fatalf("maidstone must not resolve under essex")
	}
	if s, ok := c.Service("bridging-loans"); !ok || s.Name != "Bridging Loans" {
		t.Fatalf("service bridging-loans: ok=%v s=%+v", ok, s)
	}
	if _, ok := c.Guide("no-such-guide"); ok {
		t.Fatalf("unknown guide must not resolve")
	}
}

func TestCatalog_GuideReadingTimeDerivedAtLoad(t *testing.T) {
	c := catalog.New()
	for _, g := range c.Guides() {
		if g.ReadingTime < 1 {
			t.Fatalf("guide %s reading time %d, want >= 1", g.Slug, g.ReadingTime)
		}
		if got := catalog.ReadingTime(g.Sections); got != g.ReadingTime {
			t.Fatalf("guide %s cached reading time %d != recomputed %d", g.Slug, g.ReadingTime, got)
		}
	}
}
