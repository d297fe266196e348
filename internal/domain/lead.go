package domain

// Lead is one prospective borrower's submission. Ephemeral: transformed into
// a CRM contact (upsert by email) plus an opportunity, then discarded.
type Lead struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LoanType      string `json:"loanType"`
	LoanAmount    int64  `json:"loanAmount"`    // whole pounds
	PropertyValue int64  `json:"propertyValue"` // whole pounds
	ProjectType   string `json:"projectType"`
	Location      string `json:"location"`
	Timeframe     string `json:"timeframe"`
	Message       string `json:"message"`
	Source        string `json:"source"`
	UTMSource     string `json:"utmSource"`
	UTMMedium     string `json:"utmMedium"`
	UTMCampaign   string `json:"utmCampaign"`
}

// LeadResult reports what the CRM ended up with. Either field may be nil:
// an absent contact id means the upsert failed, an absent opportunity id
// means the second step failed or was never attempted.
type LeadResult struct {
	ContactID     *string `json:"contactId,omitempty"`
	OpportunityID *string `json:"opportunityId,omitempty"`
}
