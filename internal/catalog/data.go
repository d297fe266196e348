package catalog

import "loanpages/internal/domain"

// Static tables. Locality order within a region is editorial and drives
// related-locality selection, so keep it stable across edits.

func defaultRegions() []domain.Region {
	return []domain.Region{
		{
			Slug: "kent", Name: "Kent",
			Localities: []domain.Locality{
				{Slug: "maidstone", Name: "Maidstone"},
				{Slug: "canterbury", Name: "Canterbury"},
				{Slug: "ashford", Name: "Ashford"},
				{Slug: "tonbridge", Name: "Tonbridge"},
				{Slug: "sevenoaks", Name: "Sevenoaks"},
				{Slug: "dartford", Name: "Dartford"},
				{Slug: "tunbridge-wells", Name: "Tunbridge Wells"},
			},
		},
		{
			Slug: "essex", Name: "Essex",
			Localities: []domain.Locality{
				{Slug: "chelmsford", Name: "Chelmsford"},
				{Slug: "colchester", Name: "Colchester"},
				{Slug: "brentwood", Name: "Brentwood"},
				{Slug: "basildon", Name: "Basildon"},
				{Slug: "southend-on-sea", Name: "Southend-on-Sea"},
			},
		},
		{
			Slug: "surrey", Name: "Surrey",
			Localities: []domain.Locality{
				{Slug: "guildford", Name: "Guildford"},
				{Slug: "woking", Name: "Woking"},
				{Slug: "epsom", Name: "Epsom"},
				{Slug: "reigate", Name: "Reigate"},
				{Slug: "farnham", Name: "Farnham"},
				{Slug: "esher", Name: "Esher"},
			},
		},
		{
			Slug: "hampshire", Name: "Hampshire",
			Localities: []domain.Locality{
				{Slug: "southampton", Name: "Southampton"},
				{Slug: "portsmouth", Name: "Portsmouth"},
				{Slug: "winchester", Name: "Winchester"},
				{Slug: "basingstoke", Name: "Basingstoke"},
				{Slug: "fareham", Name: "Fareham"},
			},
		},
	}
}

func defaultServices() []domain.ServiceOffering {
	return []domain.ServiceOffering{
		{
			Slug:        "bridging-loans",
			Name:        "Bridging Loans",
			ShortDesc:   "Short-term property finance, typically completed in days rather than months.",
			LongDesc:    "Fast, flexible short-term lending secured against residential or mixed-use property. Used to break chains, fund purchases before a sale completes, or release equity quickly.",
			TypicalRate: "0.55% per month",
			TypicalLTV:  "75%",
			TypicalTerm: "1-18 months",
		},
		{
			Slug:        "development-finance",
			Name:        "Development Finance",
			ShortDesc:   "Staged funding for ground-up builds and major conversions.",
			LongDesc:    "Facilities drawn in stages against certified works, covering land purchase and build costs for residential and mixed-use schemes from single units to small estates.",
			TypicalRate: "from 0.85% per month",
			TypicalLTV:  "70% of GDV",
			TypicalTerm: "6-36 months",
		},
		{
			Slug:        "auction-finance",
			Name:        "Auction Finance",
			ShortDesc:   "Completion-deadline finance for auction purchases.",
			LongDesc:    "Pre-approved short-term funding arranged around the 28-day completion window that follows a successful auction bid, with valuation and legals run in parallel.",
			TypicalRate: "0.60% per month",
			TypicalLTV:  "75%",
			TypicalTerm: "1-12 months",
		},
		{
			Slug:        "refurbishment-bridging",
			Name:        "Refurbishment Bridging",
			ShortDesc:   "Bridging with works budgets for light and heavy refurbishment.",
			LongDesc:    "Short-term facilities sized against the post-works value, funding both the purchase and the refurbishment schedule, from cosmetic upgrades to structural projects requiring permitted development or full planning.",
			TypicalRate: "0.65% per month",
			TypicalLTV:  "70% of GDV",
			TypicalTerm: "3-24 months",
		},
		{
			Slug:        "commercial-mortgages",
			Name:        "Commercial Mortgages",
			ShortDesc:   "Term lending against commercial and semi-commercial premises.",
			LongDesc:    "Owner-occupier and investment mortgages secured on offices, retail units, industrial premises and mixed-use buildings, with terms shaped around trading accounts or rental cover.",
			TypicalRate: "from 6.5% per annum",
			TypicalLTV:  "70%",
			TypicalTerm: "5-25 years",
		},
		{
			Slug:        "second-charge-bridging",
			Name:        "Second Charge Bridging",
			ShortDesc:   "Short-term capital raised behind an existing first charge.",
			LongDesc:    "Equity release secured by a second legal charge, leaving an existing cheap first-charge mortgage undisturbed while funds are raised for business use, tax liabilities or onward purchases.",
			TypicalLTV:  "70% combined",
			TypicalTerm: "1-18 months",
		},
	}
}

func defaultGuides() []domain.Guide {
	return []domain.Guide{
		{
			Slug:            "what-is-a-bridging-loan",
			Title:           "What Is a Bridging Loan and How Does It Work?",
			MetaTitle:       "What Is a Bridging Loan? A Plain-English Guide",
			MetaDescription: "How bridging loans work, what they cost, when they make sense, and how lenders assess an application.",
			Excerpt:         "Bridging loans fill the gap between a purchase and longer-term finance. Here is how they actually work.",
			Category:        "bridging",
			Sections: []domain.GuideSection{
				{
					Heading: "The basics",
					Paragraphs: []string{
						"A bridging loan is short-term finance secured against property. It exists to solve a timing problem: you need funds now, and the event that will repay them, usually a sale or a refinance, sits weeks or months away. Lenders care less about monthly affordability than about the security on offer and the credibility of the exit.",
						"Terms run from one month to around eighteen. Interest is usually retained or rolled up rather than serviced monthly, which is why the exit plan, not income, drives the underwriting.",
					},
				},
				{
					Heading: "What it costs",
					Paragraphs: []string{
						"Pricing is quoted monthly. Rates for well-secured residential deals start around 0.55% per month and rise with leverage, asset complexity and the strength of the exit. On top of interest sit an arrangement fee, typically 2% of the gross loan, a valuation fee and legal costs for both sides.",
						"Always compare the total cost of the facility over its realistic life, not the headline rate. A cheap rate with a slow lender can cost more than a sharper rate with one that completes on time.",
					},
				},
				{
					Heading: "When it makes sense",
					Paragraphs: []string{
						"Classic uses are chain breaks, auction completions, purchases of unmortgageable property ahead of refurbishment, and raising working capital against unencumbered assets. If the need is long-term, a bridge is the wrong tool: it is a deliberate, priced-for-speed stopgap.",
					},
				},
			},
			RelatedSlugs:     []string{"bridging-loan-exit-strategies", "buying-at-auction"},
			RelatedServices:  []string{"bridging-loans", "refurbishment-bridging"},
			RelatedLocations: []string{"kent", "surrey"},
		},
		{
			Slug:            "bridging-loan-exit-strategies",
			Title:           "Bridging Loan Exit Strategies Lenders Actually Believe",
			MetaTitle:       "Bridging Loan Exit Strategies Explained",
			MetaDescription: "Sale, refinance or development exit: what lenders look for in each, and how a weak exit quietly prices up your loan.",
			Excerpt:         "Every bridging application lives or dies on its exit. These are the exits that get approved.",
			Category:        "bridging",
			Sections: []domain.GuideSection{
				{
					Heading: "Sale as the exit",
					Paragraphs: []string{
						"A sale exit is believable when the asset is realistically priced for its market and the term allows for a normal marketing period plus conveyancing. Lenders discount asking prices and test what happens if the sale takes three months longer than planned.",
					},
				},
				{
					Heading: "Refinance as the exit",
					Paragraphs: []string{
						"A refinance exit needs evidence the borrower actually qualifies for the take-out product today: rental cover for a buy-to-let remortgage, trading figures for a commercial term loan. A decision in principle from the onward lender materially strengthens the case.",
						"Where the exit depends on works completing, expect the bridging lender to underwrite the schedule of works as closely as the exit itself.",
					},
				},
			},
			RelatedSlugs:     []string{"what-is-a-bridging-loan"},
			RelatedServices:  []string{"bridging-loans", "commercial-mortgages"},
			RelatedLocations: []string{"essex"},
		},
		{
			Slug:            "buying-at-auction",
			Title:           "Buying Property at Auction: Finance Before the Hammer Falls",
			MetaTitle:       "Auction Property Finance: The 28-Day Playbook",
			MetaDescription: "How to line up auction finance before bidding, what the 28-day completion deadline really demands, and the traps in legal packs.",
			Excerpt:         "Win the lot, then complete in 28 days. The finance has to be arranged before you raise your hand.",
			Category:        "auction",
			Sections: []domain.GuideSection{
				{
					Heading: "Before the auction",
					Paragraphs: []string{
						"The deposit is committed the moment the hammer falls, so the funding question must be answered before auction day. A pre-approved facility against your bidding ceiling, with valuation access agreed, turns the 28-day deadline from a threat into a formality.",
						"Read the legal pack, or pay someone who will. Short leases, restrictive covenants and occupied lots are all fundable, but only if the lender knows about them before offer stage.",
					},
				},
				{
					Heading: "After the hammer",
					Paragraphs: []string{
						"Instruct valuation and solicitors the same day. The common failure mode is not lender speed but slow conveyancing on the buyer's side, and auction contracts rarely forgive it: miss completion and the deposit is gone.",
					},
				},
			},
			RelatedSlugs:     []string{"what-is-a-bridging-loan", "guide-to-development-appraisals"},
			RelatedServices:  []string{"auction-finance", "bridging-loans"},
			RelatedLocations: []string{"kent", "hampshire"},
		},
		{
			Slug:            "guide-to-development-appraisals",
			Title:           "Development Appraisals: How Lenders Read Your Numbers",
			MetaTitle:       "Development Appraisals for Finance Applications",
			MetaDescription: "GDV, build cost, contingency and profit on cost: the appraisal figures development lenders test first, and the red flags that kill deals.",
			Excerpt:         "A development facility is underwritten off your appraisal. Here is how a credit committee reads it.",
			Category:        "development",
			Sections: []domain.GuideSection{
				{
					Heading: "The numbers that matter",
					Paragraphs: []string{
						"Every appraisal reduces to four figures: gross development value, total cost including land, contingency, and profit on cost. Lenders test GDV against comparable sales rather than agent optimism, expect contingency of at least 5-10% of build cost, and want profit on cost north of 20% so the scheme can absorb shocks.",
						"Day-one land leverage and peak debt matter as much as the end loan figure. A facility that looks comfortable at 70% of GDV can still fail if peak debt arrives before the first units can be released.",
					},
				},
			},
			RelatedSlugs:     []string{"what-is-a-bridging-loan"},
			RelatedServices:  []string{"development-finance"},
			RelatedLocations: []string{"surrey", "essex"},
		},
	}
}
