package content

import (
	"fmt"

	"loanpages/internal/domain"
)

// FAQsFor builds the per-service FAQ block for one page. Questions embed
// the locality so the block is specific to the page, not boilerplate.
func FAQsFor(serviceSlug, serviceName, locality, region string) []domain.FAQ {
	out := []domain.FAQ{
		{
			Question: fmt.Sprintf("How quickly can %s be arranged in %s?", serviceName, locality),
			Answer:   fmt.Sprintf("Indicative terms are usually issued the same day. For straightforward %s cases with a clean legal title, completion in %s typically takes five to ten working days.", serviceName, locality),
		},
	}
	switch serviceSlug {
	case SlugBridging, SlugRefurbishment, SlugSecondCharge:
		out = append(out, domain.FAQ{
			Question: "Do I need to make monthly payments?",
			Answer:   "Usually not. Interest on short-term facilities is normally retained or rolled up, so the full balance is settled when the loan redeems through your sale or refinance.",
		})
	case SlugDevelopment:
		out = append(out, domain.FAQ{
			Question: "How are development funds released?",
			Answer:   "In arrears against certified works. A monitoring surveyor signs off each stage and the corresponding tranche is drawn, keeping interest charged only on money actually deployed.",
		})
	case SlugAuction:
		out = append(out, domain.FAQ{
			Question: "Can funding be agreed before I bid?",
			Answer:   "Yes, and it should be. We pre-approve a facility against your bidding ceiling so the 28-day completion clock starts with valuation and legals already moving.",
		})
	case SlugCommercial:
		out = append(out, domain.FAQ{
			Question: "What evidence do commercial lenders want?",
			Answer:   "Two to three years of accounts for owner-occupiers, or the lease and rental evidence for investments. Lenders test serviceability against the premises, not just the borrower.",
		})
	}
	out = append(out, domain.FAQ{
		Question: fmt.Sprintf("Do you cover the whole of %s?", region),
		Answer:   fmt.Sprintf("Yes. We arrange %s throughout %s and the wider %s area, including rural and mixed-use property that high-street lenders decline.", serviceName, locality, region),
	})
	return out
}
