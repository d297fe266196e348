package content

import "loanpages/internal/domain"

// RelatedLocalities returns up to limit other localities from the same
// region, in the catalog's fixed per-region order, never including the
// current locality. An unknown region yields an empty list; a region with
// fewer than limit+1 localities yields all the others, unpadded.
func (e *Engine) RelatedLocalities(regionSlug, localitySlug string, limit int) []domain.Locality {
	r, ok := e.cat.Region(regionSlug)
	if !ok || limit <= 0 {
		return nil
	}
	out := make([]domain.Locality, 0, limit)
	for _, l := range r.Localities {
		if l.Slug == localitySlug {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out
}

// RelatedServices returns the full service catalog minus the current one,
// preserving catalog order.
func (e *Engine) RelatedServices(currentSlug string) []domain.ServiceOffering {
	all := e.cat.Services()
	out := make([]domain.ServiceOffering, 0, len(all))
	for _, s := range all {
		if s.Slug == currentSlug {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RelatedGuides resolves a guide's authored related-slug edges against the
// catalog. Slugs with no matching guide are dropped silently: edges go
// stale as guides come and go, and a stale edge must never break a page.
func (e *Engine) RelatedGuides(guideSlug string) []domain.Guide {
	g, ok := e.cat.Guide(guideSlug)
	if !ok {
		return nil
	}
	var out []domain.Guide
	for _, slug := range g.RelatedSlugs {
		if rel, ok := e.cat.Guide(slug); ok {
			out = append(out, rel)
		}
	}
	return out
}
