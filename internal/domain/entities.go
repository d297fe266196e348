package domain

// Region is a top-level geographic area (a county). It owns its localities;
// the per-region ordering is fixed at load time and drives related-locality
// selection.
type Region struct {
	Slug       string
	Name       string
	Localities []Locality
}

// Locality is a town within a Region. (Region.Slug, Locality.Slug) is
// globally unique.
type Locality struct {
	Slug       string
	Name       string
	RegionSlug string // back-reference, relation only
}

// ServiceOffering is one financial product offered per locality.
// Immutable after catalog load. Rate/LTV/term are display strings; empty
// means the figure is not advertised for that product.
type ServiceOffering struct {
	Slug        string
	Name        string
	ShortDesc   string
	LongDesc    string
	TypicalRate string
	TypicalLTV  string
	TypicalTerm string
}

type GuideSection struct {
	Heading    string
	Paragraphs []string
}

// Guide is a long-form article. RelatedSlugs are authored edges into the
// guide catalog and may go stale; resolution drops misses silently.
// ReadingTime is derived once at catalog load and never mutated.
type Guide struct {
	Slug             string
	Title            string
	MetaTitle        string
	MetaDescription  string
	Excerpt          string
	Category         string
	Sections         []GuideSection
	RelatedSlugs     []string
	RelatedServices  []string
	RelatedLocations []string
	ReadingTime      int // minutes
}

// PageKey addresses one landing page.
type PageKey struct {
	Region   string `json:"region"`
	Locality string `json:"locality"`
	Service  string `json:"service"`
}

type Breadcrumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DealExample is an illustrative funded case for one (service, locality).
type DealExample struct {
	Summary    string `json:"summary"`
	LoanAmount string `json:"loanAmount"`
	LTV        string `json:"ltv"`
	Term       string `json:"term"`
	Outcome    string `json:"outcome"`
}

// ContentBundle is the fully resolved, render-ready output for one key.
// It is a pure function of the key and the catalog: transient, recomputed
// on demand, safe to cache and to recompute any number of times.
type ContentBundle struct {
	Key             PageKey      `json:"key"`
	Title           string       `json:"title"`
	MetaDescription string       `json:"metaDescription"`
	Headline        string       `json:"headline"`
	Subheadline     string       `json:"subheadline"`
	Breadcrumbs     []Breadcrumb `json:"breadcrumbs"`

	// Structured-data documents (JSON-LD ready).
	BreadcrumbLD map[string]any `json:"breadcrumbLd"`
	FAQLD        map[string]any `json:"faqLd"`
	ServiceLD    map[string]any `json:"serviceLd"`

	Commentary     []string    `json:"commentary"`
	FAQs           []FAQ       `json:"faqs"`
	Deal           DealExample `json:"deal"`
	ArrangementFee string      `json:"arrangementFee"`

	RelatedLocalities []Locality        `json:"relatedLocalities"`
	RelatedServices   []ServiceOffering `json:"relatedServices"`
}
