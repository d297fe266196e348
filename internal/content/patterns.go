package content

import "fmt"

// Known service slugs. The dispatch in ResolvePattern switches over these;
// anything else takes the default arm.
const (
	SlugBridging      = "bridging-loans"
	SlugDevelopment   = "development-finance"
	SlugAuction       = "auction-finance"
	SlugRefurbishment = "refurbishment-bridging"
	SlugCommercial    = "commercial-mortgages"
	SlugSecondCharge  = "second-charge-bridging"
)

// Pattern is the text skeleton of one landing page.
type Pattern struct {
	Title       string
	Description string
	Headline    string
	Subheadline string
}

// ResolvePattern maps (service, locality, region) to page text. Pure and
// total: every branch, including the default, weaves both the locality and
// the region name into the title and description so no two keys in the
// cross-product can collide, and identical inputs always produce identical
// output. serviceName is the resolved display name for the slug; the
// default arm uses it so unknown services still read naturally.
func ResolvePattern(serviceSlug, serviceName, locality, region string) Pattern {
	switch serviceSlug {
	case SlugBridging:
		return Pattern{
			Title:       fmt.Sprintf("Bridging Loans in %s | Fast Short-Term Finance in %s", locality, region),
			Description: fmt.Sprintf("Bridging finance for %s property, arranged by specialists who know the %s market. Decisions in hours, completions in days, rates from 0.55%% per month.", locality, region),
			Headline:    fmt.Sprintf("Bridging Loans in %s", locality),
			Subheadline: fmt.Sprintf("Short-term property finance across %s, completed at auction pace", region),
		}
	case SlugDevelopment:
		return Pattern{
			Title:       fmt.Sprintf("Development Finance in %s | %s Build & Conversion Funding", locality, region),
			Description: fmt.Sprintf("Staged development funding for %s schemes, from single units to small estates. We place %s projects with lenders who understand local GDVs.", locality, region),
			Headline:    fmt.Sprintf("Development Finance in %s", locality),
			Subheadline: fmt.Sprintf("Land and build funding for developers across %s", region),
		}
	case SlugAuction:
		return Pattern{
			Title:       fmt.Sprintf("Auction Finance in %s | 28-Day Completions Across %s", locality, region),
			Description: fmt.Sprintf("Pre-approved auction funding for %s lots with the 28-day deadline built in. The %s auction rooms move fast; so do we.", locality, region),
			Headline:    fmt.Sprintf("Auction Finance in %s", locality),
			Subheadline: fmt.Sprintf("Bid with funding agreed, anywhere in %s", region),
		}
	case SlugRefurbishment:
		return Pattern{
			Title:       fmt.Sprintf("Refurbishment Bridging in %s | Light & Heavy Refurb Loans, %s", locality, region),
			Description: fmt.Sprintf("Purchase-plus-works facilities for %s refurbishment projects, sized against post-works value. Trusted by landlords and flippers across %s.", locality, region),
			Headline:    fmt.Sprintf("Refurbishment Bridging in %s", locality),
			Subheadline: fmt.Sprintf("Funding the purchase and the works, across %s", region),
		}
	case SlugCommercial:
		return Pattern{
			Title:       fmt.Sprintf("Commercial Mortgages in %s | %s Business Property Finance", locality, region),
			Description: fmt.Sprintf("Owner-occupier and investment mortgages on %s commercial premises. Whole-of-market advice grounded in %s yields and covenants.", locality, region),
			Headline:    fmt.Sprintf("Commercial Mortgages in %s", locality),
			Subheadline: fmt.Sprintf("Term finance for business premises throughout %s", region),
		}
	case SlugSecondCharge:
		return Pattern{
			Title:       fmt.Sprintf("Second Charge Bridging in %s | Equity Release Without Remortgaging, %s", locality, region),
			Description: fmt.Sprintf("Raise capital against %s property without disturbing your first charge. Second charge bridging for %s owners with equity to work.", locality, region),
			Headline:    fmt.Sprintf("Second Charge Bridging in %s", locality),
			Subheadline: fmt.Sprintf("Capital raised behind your existing mortgage, across %s", region),
		}
	default:
		return Pattern{
			Title:       fmt.Sprintf("%s in %s | Specialist Property Finance in %s", serviceName, locality, region),
			Description: fmt.Sprintf("%s arranged for %s borrowers by a broker with deep %s coverage. Talk to us about terms, timing and lender appetite.", serviceName, locality, region),
			Headline:    fmt.Sprintf("%s in %s", serviceName, locality),
			Subheadline: fmt.Sprintf("Specialist finance across %s", region),
		}
	}
}
