package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"loanpages/internal/content"
	"loanpages/internal/domain"
)

// Fixed CRM routing for website enquiries.
const (
	crmPipelineID = "website-enquiries"
	crmStageID    = "new-enquiry"
	websiteTag    = "website lead"
)

// LeadService runs the two-step CRM write: contact upsert, then an
// opportunity linked to the returned contact id. Both steps are wrapped so
// that NO failure — missing configuration, network error, upstream
// non-success, missing id — ever reaches the caller as an error. A CRM
// hiccup must never break the submission flow; the caller always gets a
// LeadResult, possibly with absent fields, and the failure is logged for
// manual follow-up.
type LeadService struct {
	crm domain.CRMClient
}

func NewLeadService(c domain.CRMClient) *LeadService {
	return &LeadService{crm: c}
}

func (s *LeadService) Submit(ctx context.Context, lead domain.Lead) domain.LeadResult {
	var res domain.LeadResult

	contactID, err := s.crm.UpsertContact(ctx, contactPayload(lead))
	if err != nil {
		log.Error().Err(err).Str("email", lead.Email).Msg("crm contact upsert failed")
		return res
	}
	res.ContactID = &contactID

	oppID, err := s.crm.CreateOpportunity(ctx, opportunityPayload(lead, contactID))
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID).Msg("crm opportunity create failed")
		return res
	}
	res.OpportunityID = &oppID

	log.Info().Str("contact_id", contactID).Str("opportunity_id", oppID).Msg("lead ingested")
	return res
}

func contactPayload(lead domain.Lead) map[string]any {
	first, last := splitName(lead.Name)
	p := map[string]any{
		"email":     strings.TrimSpace(strings.ToLower(lead.Email)),
		"firstName": first,
		"lastName":  last,
		"tags":      leadTags(lead),
		"notes":     dealSummary(lead),
	}
	if lead.Phone != "" {
		p["phone"] = lead.Phone
	}
	if lead.Source != "" {
		p["source"] = lead.Source
	}
	return p
}

func opportunityPayload(lead domain.Lead, contactID string) map[string]any {
	return map[string]any{
		"contactId":     contactID,
		"pipelineId":    crmPipelineID,
		"pipelineStage": crmStageID,
		"name":          opportunityName(lead),
		"monetaryValue": lead.LoanAmount,
		"status":        "open",
	}
}

// opportunityName is "borrower - loan type - amount", skipping parts the
// lead did not supply.
func opportunityName(lead domain.Lead) string {
	parts := []string{strings.TrimSpace(lead.Name)}
	if lead.LoanType != "" {
		parts = append(parts, lead.LoanType)
	}
	if lead.LoanAmount > 0 {
		parts = append(parts, content.FormatGBP(lead.LoanAmount))
	}
	return strings.Join(nonEmpty(parts), " - ")
}

// splitName splits a free-text full name into first/last. Everything after
// the first token is the last name; a single token leaves last empty.
func splitName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// leadTags derives the tag set: the fixed website tag, a loan-type tag, and
// optional project/source/UTM tags. Empty fields contribute nothing.
func leadTags(lead domain.Lead) []string {
	tags := []string{websiteTag}
	if lead.LoanType != "" {
		tags = append(tags, strings.ToLower(lead.LoanType))
	}
	if lead.ProjectType != "" {
		tags = append(tags, "project: "+strings.ToLower(lead.ProjectType))
	}
	if lead.Source != "" {
		tags = append(tags, "source: "+strings.ToLower(lead.Source))
	}
	if lead.UTMSource != "" {
		tags = append(tags, "utm: "+strings.ToLower(lead.UTMSource))
	}
	if lead.UTMCampaign != "" {
		tags = append(tags, "campaign: "+strings.ToLower(lead.UTMCampaign))
	}
	return tags
}

// dealSummary composes the free-text note, one line per populated field.
// Lines for absent fields are never emitted.
func dealSummary(lead domain.Lead) string {
	var lines []string
	add := func(label, v string) {
		if strings.TrimSpace(v) != "" {
			lines = append(lines, label+": "+v)
		}
	}
	add("Loan type", lead.LoanType)
	if lead.LoanAmount > 0 {
		add("Loan amount", content.FormatGBP(lead.LoanAmount))
	}
	if lead.PropertyValue > 0 {
		add("Property value", content.FormatGBP(lead.PropertyValue))
	}
	add("Project type", lead.ProjectType)
	add("Location", lead.Location)
	add("Timeframe", lead.Timeframe)
	add("Message", lead.Message)
	if lead.UTMSource != "" || lead.UTMMedium != "" || lead.UTMCampaign != "" {
		add("Attribution", strings.Join(nonEmpty([]string{lead.UTMSource, lead.UTMMedium, lead.UTMCampaign}), " / "))
	}
	return strings.Join(lines, "\n")
}

func nonEmpty(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
