package content

import (
	"iter"

	"loanpages/internal/catalog"
	"loanpages/internal/domain"
)

// Engine is the content-resolution core: a pure view over the read-only
// catalog. It holds no I/O handles and no mutable state, so any number of
// goroutines may call it concurrently.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Enumerate yields the exact cross-product of regions × localities ×
// services for build-time pre-generation. The sequence is lazy, finite and
// restartable; each range owns its own cursor, so concurrent consumers do
// not interfere. The service list is captured once, not once per locality.
func (e *Engine) Enumerate() iter.Seq[domain.PageKey] {
	regions := e.cat.Regions()
	services := e.cat.Services()
	return func(yield func(domain.PageKey) bool) {
		for _, r := range regions {
			for _, l := range r.Localities {
				for _, s := range services {
					if !yield(domain.PageKey{Region: r.Slug, Locality: l.Slug, Service: s.Slug}) {
						return
					}
				}
			}
		}
	}
}
