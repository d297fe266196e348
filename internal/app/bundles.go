package app

import (
	"context"
	"fmt"
	"time"

	"loanpages/internal/adapters/observability"
	"loanpages/internal/catalog"
	"loanpages/internal/content"
	"loanpages/internal/domain"
)

// ContentService fronts the pure resolution engine with a cache-aside read
// model. The cache TTL doubles as the revalidation interval: resolution is
// pure, so recomputing an expired entry yields identical output unless the
// catalog itself changed.
type ContentService struct {
	engine   *content.Engine
	cat      *catalog.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewContentService(e *content.Engine, cat *catalog.Catalog, c domain.Cache, ttl time.Duration) *ContentService {
	return &ContentService{engine: e, cat: cat, cache: c, cacheTTL: ttl}
}

// GetBundle returns the resolved bundle for a key. Never fails: a cache
// error or miss just falls through to recomputation.
func (s *ContentService) GetBundle(ctx context.Context, region, locality, service string) domain.ContentBundle {
	key := fmt.Sprintf("bundle:%s:%s:%s", region, locality, service)
	var b domain.ContentBundle
	if ok, _ := s.cache.Get(ctx, key, &b); ok {
		return b
	}
	b = s.engine.Assemble(region, locality, service)
	if _, known := s.cat.Locality(region, locality); known {
		observability.ObserveResolution("exact")
	} else {
		observability.ObserveResolution("degraded")
	}
	_ = s.cache.Set(ctx, key, b, int(s.cacheTTL.Seconds()))
	return b
}

// Keys materializes the enumerated key space for the build-time consumer.
func (s *ContentService) Keys() []domain.PageKey {
	out := make([]domain.PageKey, 0, s.cat.PageCount())
	for k := range s.engine.Enumerate() {
		out = append(out, k)
	}
	return out
}

// GuideView is a guide plus its resolved related-guide edges.
type GuideView struct {
	domain.Guide
	Related []domain.Guide `json:"related"`
}

func (s *ContentService) ListGuides() []domain.Guide {
	return s.cat.Guides()
}

func (s *ContentService) GetGuide(slug string) (GuideView, bool) {
	g, ok := s.cat.Guide(slug)
	if !ok {
		return GuideView{}, false
	}
	return GuideView{Guide: g, Related: s.engine.RelatedGuides(slug)}, true
}

func (s *ContentService) ListServices() []domain.ServiceOffering {
	return s.cat.Services()
}
