package content

import (
	"fmt"

	"loanpages/internal/domain"
)

// MarketCommentary produces the editorial paragraphs for one page. Like the
// pattern generators it is pure and weaves both names into the text.
func MarketCommentary(serviceName, locality, region string) []string {
	return []string{
		fmt.Sprintf("%s remains one of the more active property markets in %s, with demand split between owner-occupiers, landlords repositioning stock and investors buying at auction. That mix keeps transactions moving, but it also rewards borrowers who can complete quickly.", locality, region),
		fmt.Sprintf("%s is the tool for exactly that. Because facilities are underwritten against the security and the exit rather than a payslip, a %s purchase that would stall in a mortgage queue can complete inside a fortnight.", serviceName, locality),
		fmt.Sprintf("Lender appetite for %s assets is strong across %s, and pricing has stayed competitive as new entrants chase the region. The spread between the best and worst terms on an identical case can exceed a full percentage point, which is where whole-of-market placement earns its keep.", locality, region),
	}
}

// Deal example figures per service. Loan amounts are whole pounds.
var dealFigures = map[string]struct {
	amount  int64
	ltv     string
	term    string
	purpose string
	outcome string
}{
	SlugBridging:      {285000, "68%", "9 months", "chain-break purchase of a three-bed semi", "completed in 8 working days; redeemed early from the onward sale"},
	SlugDevelopment:   {1450000, "65% of GDV", "18 months", "ground-up scheme of four houses", "all units pre-sold off-plan; facility redeemed two months early"},
	SlugAuction:       {196000, "72%", "6 months", "auction purchase of a vacant terrace", "completed on day 21 of the 28-day deadline"},
	SlugRefurbishment: {240000, "70% of GDV", "12 months", "purchase plus full internal refurbishment", "revalued post-works and refinanced onto a buy-to-let mortgage"},
	SlugCommercial:    {520000, "65%", "20 years", "owner-occupier purchase of trading premises", "moved from rent to ownership with payments below the old rent"},
	SlugSecondCharge:  {150000, "64% combined", "10 months", "capital raise for a business tax liability", "first charge untouched; repaid from a retained profit distribution"},
}

// DealFor returns the illustrative funded case for a page. Unknown services
// fall back to a generic bridging-shaped example so the section always
// renders.
func DealFor(serviceSlug, serviceName, locality string) domain.DealExample {
	f, ok := dealFigures[serviceSlug]
	if !ok {
		f = dealFigures[SlugBridging]
	}
	return domain.DealExample{
		Summary:    fmt.Sprintf("%s of %s for a %s in %s.", serviceName, FormatGBP(f.amount), f.purpose, locality),
		LoanAmount: FormatGBP(f.amount),
		LTV:        f.ltv,
		Term:       f.term,
		Outcome:    f.outcome,
	}
}

// ArrangementFee returns the fee line for a service. Term lending carries a
// lower fee than short-term facilities.
func ArrangementFee(serviceSlug string) string {
	switch serviceSlug {
	case SlugCommercial:
		return "Arrangement fee from 1% of the loan amount, payable on completion."
	case SlugDevelopment:
		return "Arrangement fee typically 2% of the facility, with an exit fee agreed case by case."
	default:
		return "Arrangement fee typically 2% of the gross loan, usually added to the facility."
	}
}
