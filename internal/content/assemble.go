package content

import (
	"fmt"

	"loanpages/internal/domain"
)

const relatedLocalityLimit = 6

// Assemble resolves one (region, locality, service) key into a complete
// ContentBundle. It must succeed for ANY triple of strings: keys with no
// catalog match fall back to humanized display names and empty related
// lists, never to an error. The page-serving layer accepts keys beyond the
// pre-built set, so "never fail the page" is the defining invariant here.
func (e *Engine) Assemble(regionKey, localityKey, serviceKey string) domain.ContentBundle {
	regionName := Humanize(regionKey)
	if r, ok := e.cat.Region(regionKey); ok {
		regionName = r.Name
	}
	localityName := Humanize(localityKey)
	if l, ok := e.cat.Locality(regionKey, localityKey); ok {
		localityName = l.Name
	}
	svc, svcFound := e.cat.Service(serviceKey)
	if !svcFound {
		svc = domain.ServiceOffering{Slug: serviceKey, Name: Humanize(serviceKey)}
	}

	p := ResolvePattern(svc.Slug, svc.Name, localityName, regionName)
	faqs := FAQsFor(svc.Slug, svc.Name, localityName, regionName)
	crumbs := breadcrumbs(regionKey, localityKey, serviceKey, regionName, localityName, svc.Name)

	return domain.ContentBundle{
		Key:             domain.PageKey{Region: regionKey, Locality: localityKey, Service: serviceKey},
		Title:           p.Title,
		MetaDescription: p.Description,
		Headline:        p.Headline,
		Subheadline:     p.Subheadline,
		Breadcrumbs:     crumbs,

		BreadcrumbLD: breadcrumbLD(crumbs),
		FAQLD:        faqLD(faqs),
		ServiceLD:    serviceLD(svc, localityName, regionName),

		Commentary:     MarketCommentary(svc.Name, localityName, regionName),
		FAQs:           faqs,
		Deal:           DealFor(svc.Slug, svc.Name, localityName),
		ArrangementFee: ArrangementFee(svc.Slug),

		RelatedLocalities: e.RelatedLocalities(regionKey, localityKey, relatedLocalityLimit),
		RelatedServices:   e.RelatedServices(svc.Slug),
	}
}

func breadcrumbs(regionKey, localityKey, serviceKey, regionName, localityName, serviceName string) []domain.Breadcrumb {
	return []domain.Breadcrumb{
		{Label: "Home", Path: "/"},
		{Label: "Locations", Path: "/locations"},
		{Label: regionName, Path: "/locations/" + regionKey},
		{Label: localityName, Path: "/locations/" + regionKey + "/" + localityKey},
		{Label: serviceName, Path: "/locations/" + regionKey + "/" + localityKey + "/" + serviceKey},
	}
}

// The three documents below are JSON-LD ready maps. encoding/json sorts map
// keys, so marshalling a bundle twice yields byte-identical output.

func breadcrumbLD(crumbs []domain.Breadcrumb) map[string]any {
	items := make([]any, len(crumbs))
	for i, c := range crumbs {
		items[i] = map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Label,
			"item":     siteBase + c.Path,
		}
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

func faqLD(faqs []domain.FAQ) map[string]any {
	items := make([]any, len(faqs))
	for i, f := range faqs {
		items[i] = map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		}
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	}
}

func serviceLD(svc domain.ServiceOffering, localityName, regionName string) map[string]any {
	desc := svc.LongDesc
	if desc == "" {
		desc = fmt.Sprintf("%s arranged for property in %s, %s.", svc.Name, localityName, regionName)
	}
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "FinancialService",
		"name":        fmt.Sprintf("%s in %s", svc.Name, localityName),
		"description": desc,
		"areaServed": map[string]any{
			"@type":            "Place",
			"name":             localityName,
			"containedInPlace": regionName,
		},
		"provider": map[string]any{
			"@type": "FinancialService",
			"name":  siteName,
			"url":   siteBase,
		},
	}
}

const (
	siteBase = "https://www.loanpages.co.uk"
	siteName = "Loanpages Property Finance"
)
