package app_test

import (
	"context"
	"testing"
	"time"

	"loanpages/internal/app"
	"loanpages/internal/catalog"
	"loanpages/internal/content"
	"loanpages/internal/domain"
)

// ---- fake cache ----

type fakeCache struct {
	store map[string]domain.ContentBundle
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.ContentBundle); ok {
		*d = v
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.ContentBundle{}
	}
	if b, ok := v.(domain.ContentBundle); ok {
		c.store[key] = b
	}
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

func newContentService(cache domain.Cache) *app.ContentService {
	cat := catalog.New()
	return app.NewContentService(content.NewEngine(cat), cat, cache, 10*time.Minute)
}

// ---- tests ----

func TestGetBundle_CacheMissThenHit(t *testing.T) {
	cache := &fakeCache{}
	s := newContentService(cache)

	b1 := s.GetBundle(context.Background(), "kent", "ashford", "auction-finance")
	if b1.Title == "" {
		t.Fatalf("empty bundle on miss")
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache set, got %d", cache.sets)
	}

	b2 := s.GetBundle(context.Background(), "kent", "ashford", "auction-finance")
	if cache.sets != 1 {
		t.Fatalf("second read should come from cache, sets=%d", cache.sets)
	}
	if b1.Title != b2.Title {
		t.Fatalf("cached bundle differs: %q vs %q", b1.Title, b2.Title)
	}
}

func TestGetBundle_NeverFailsForUnknownKey(t *testing.T) {
	s := newContentService(&fakeCache{})
	b := s.GetBundle(context.Background(), "zzz-unknown", "nowhere", "made-up")
	if b.Title == "" || b.MetaDescription == "" {
		t.Fatalf("degraded bundle incomplete: %+v", b)
	}
}

func TestKeys_MatchesCatalogPageCount(t *testing.T) {
	s := newContentService(&fakeCache{})
	keys := s.Keys()
	if len(keys) != catalog.New().PageCount() {
		t.Fatalf("keys = %d, want %d", len(keys), catalog.New().PageCount())
	}
}

func TestGetGuide_ResolvesRelated(t *testing.T) {
	s := newContentService(&fakeCache{})

	gv, ok := s.GetGuide("what-is-a-bridging-loan")
	if !ok {
		t.Fatalf("expected guide")
	}
	if gv.ReadingTime < 1 {
		t.Fatalf("reading time not derived: %d", gv.ReadingTime)
	}
	if len(gv.Related) == 0 {
		t.Fatalf("expected resolved related guides")
	}
	if _, ok := s.GetGuide("ghost"); ok {
		t.Fatalf("unknown guide must not resolve")
	}
}
