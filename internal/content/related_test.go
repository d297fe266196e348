package content_test

import (
	"testing"

	"loanpages/internal/catalog"
	"loanpages/internal/content"
	"loanpages/internal/domain"
)

// small fixture catalog with a deliberately stale guide edge
func fixtureEngine() *content.Engine {
	regions := []domain.Region{
		{Slug: "kent", Name: "Kent", Localities: []domain.Locality{
			{Slug: "maidstone", Name: "Maidstone"},
			{Slug: "canterbury", Name: "Canterbury"},
			{Slug: "ashford", Name: "Ashford"},
			{Slug: "dartford", Name: "Dartford"},
		}},
		{Slug: "essex", Name: "Essex", Localities: []domain.Locality{
			{Slug: "chelmsford", Name: "Chelmsford"},
		}},
	}
	services := []domain.ServiceOffering{
		{Slug: "bridging-loans", Name: "Bridging Loans"},
		{Slug: "auction-finance", Name: "Auction Finance"},
		{Slug: "development-finance", Name: "Development Finance"},
	}
	guides := []domain.Guide{
		{Slug: "real-guide", Title: "Real Guide", Sections: []domain.GuideSection{{Heading: "h", Paragraphs: []string{"p"}}}},
		{Slug: "linking-guide", Title: "Linking Guide", RelatedSlugs: []string{"real-guide", "ghost-slug"}},
	}
	return content.NewEngine(catalog.NewWith(regions, services, guides))
}

func TestRelatedLocalities_ExcludesSelfAndRespectsLimit(t *testing.T) {
	e := fixtureEngine()

	got := e.RelatedLocalities("kent", "canterbury", 2)
	if len(got) != 2 {
		t.Fatalf("want 2 localities, got %d", len(got))
	}
	// catalog order, skipping self
	if got[0].Slug != "maidstone" || got[1].Slug != "ashford" {
		t.Fatalf("unexpected selection order: %+v", got)
	}
	for _, l := range got {
		if l.Slug == "canterbury" {
			t.Fatalf("related localities include the locality itself")
		}
	}
}

func TestRelatedLocalities_SmallRegionReturnsAllOthers(t *testing.T) {
	e := fixtureEngine()
	// kent has 3 other localities; asking for 6 returns exactly those 3
	got := e.RelatedLocalities("kent", "maidstone", 6)
	if len(got) != 3 {
		t.Fatalf("want all 3 others unpadded, got %d: %+v", len(got), got)
	}
	if got := e.RelatedLocalities("essex", "chelmsford", 6); len(got) != 0 {
		t.Fatalf("single-locality region: want empty, got %+v", got)
	}
}

func TestRelatedLocalities_UnknownRegion(t *testing.T) {
	e := fixtureEngine()
	if got := e.RelatedLocalities("zzz-unknown", "nowhere", 6); len(got) != 0 {
		t.Fatalf("unknown region: want empty, got %+v", got)
	}
}

func TestRelatedServices_FullCatalogMinusSelf(t *testing.T) {
	e := fixtureEngine()
	got := e.RelatedServices("auction-finance")
	if len(got) != 2 {
		t.Fatalf("want 2 services, got %d", len(got))
	}
	if got[0].Slug != "bridging-loans" || got[1].Slug != "development-finance" {
		t.Fatalf("catalog order not preserved: %+v", got)
	}
	// unknown current slug -> full catalog
	if got := e.RelatedServices("made-up"); len(got) != 3 {
		t.Fatalf("unknown current service: want full catalog, got %d", len(got))
	}
}

func TestRelatedGuides_DropsGhostSlugsSilently(t *testing.T) {
	e := fixtureEngine()
	got := e.RelatedGuides("linking-guide")
	if len(got) != 1 {
		t.Fatalf("want 1 resolved guide, got %d: %+v", len(got), got)
	}
	if got[0].Slug != "real-guide" {
		t.Fatalf("unexpected resolved guide: %+v", got[0])
	}
	if got := e.RelatedGuides("ghost-slug"); got != nil {
		t.Fatalf("unknown guide: want nil, got %+v", got)
	}
}
