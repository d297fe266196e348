package catalog

import (
	"fmt"

	"loanpages/internal/domain"
)

// Catalog holds the static entity tables. It is built once at process start
// and is read-only afterwards, so concurrent readers need no locking.
type Catalog struct {
	regions  []domain.Region
	services []domain.ServiceOffering
	guides   []domain.Guide

	regionBySlug   map[string]int
	localityByKey  map[string]int2 // (region, locality) -> (region idx, locality idx)
	serviceBySlug  map[string]int
	guideBySlug    map[string]int
	totalPageCount int
}

type int2 struct{ a, b int }

// New loads the default tables.
func New() *Catalog {
	return NewWith(defaultRegions(), defaultServices(), defaultGuides())
}

// NewWith builds a catalog from explicit tables. Guide reading times are
// derived here; callers never set them.
func NewWith(regions []domain.Region, services []domain.ServiceOffering, guides []domain.Guide) *Catalog {
	c := &Catalog{
		regions:       regions,
		services:      services,
		guides:        guides,
		regionBySlug:  make(map[string]int, len(regions)),
		localityByKey: make(map[string]int2),
		serviceBySlug: make(map[string]int, len(services)),
		guideBySlug:   make(map[string]int, len(guides)),
	}
	for i := range c.regions {
		r := &c.regions[i]
		c.regionBySlug[r.Slug] = i
		for j := range r.Localities {
			r.Localities[j].RegionSlug = r.Slug
			c.localityByKey[r.Slug+"/"+r.Localities[j].Slug] = int2{i, j}
		}
		c.totalPageCount += len(r.Localities) * len(services)
	}
	for i := range c.services {
		c.serviceBySlug[c.services[i].Slug] = i
	}
	for i := range c.guides {
		c.guides[i].ReadingTime = ReadingTime(c.guides[i].Sections)
		c.guideBySlug[c.guides[i].Slug] = i
	}
	return c
}

func (c *Catalog) Regions() []domain.Region           { return c.regions }
func (c *Catalog) Services() []domain.ServiceOffering { return c.services }
func (c *Catalog) Guides() []domain.Guide             { return c.guides }

// PageCount is the size of the enumerated key space.
func (c *Catalog) PageCount() int { return c.totalPageCount }

func (c *Catalog) Region(slug string) (domain.Region, bool) {
	i, ok := c.regionBySlug[slug]
	if !ok {
		return domain.Region{}, false
	}
	return c.regions[i], true
}

func (c *Catalog) Locality(regionSlug, localitySlug string) (domain.Locality, bool) {
	idx, ok := c.localityByKey[regionSlug+"/"+localitySlug]
	if !ok {
		return domain.Locality{}, false
	}
	return c.regions[idx.a].Localities[idx.b], true
}

func (c *Catalog) Service(slug string) (domain.ServiceOffering, bool) {
	i, ok := c.serviceBySlug[slug]
	if !ok {
		return domain.ServiceOffering{}, false
	}
	return c.services[i], true
}

func (c *Catalog) Guide(slug string) (domain.Guide, bool) {
	i, ok := c.guideBySlug[slug]
	if !ok {
		return domain.Guide{}, false
	}
	return c.guides[i], true
}

// Validate checks the uniqueness invariants of the tables. Called from
// main so a bad data edit fails fast at startup rather than at render time.
func (c *Catalog) Validate() error {
	if len(c.regionBySlug) != len(c.regions) {
		return fmt.Errorf("catalog: duplicate region slug")
	}
	n := 0
	for _, r := range c.regions {
		n += len(r.Localities)
	}
	if len(c.localityByKey) != n {
		return fmt.Errorf("catalog: duplicate (region, locality) pair")
	}
	if len(c.serviceBySlug) != len(c.services) {
		return fmt.Errorf("catalog: duplicate service slug")
	}
	if len(c.guideBySlug) != len(c.guides) {
		return fmt.Errorf("catalog: duplicate guide slug")
	}
	return nil
}
