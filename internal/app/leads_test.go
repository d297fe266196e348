package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loanpages/internal/app"
	"loanpages/internal/domain"
)

// ---- fake CRM ----

type fakeCRM struct {
	contactID   string
	upsertErr   error
	oppID       string
	oppErr      error
	upsertCalls int
	oppCalls    int
	lastContact map[string]any
	lastOpp     map[string]any
}

func (f *fakeCRM) UpsertContact(ctx context.Context, p map[string]any) (string, error) {
	f.upsertCalls++
	f.lastContact = p
	return f.contactID, f.upsertErr
}

func (f *fakeCRM) CreateOpportunity(ctx context.Context, p map[string]any) (string, error) {
	f.oppCalls++
	f.lastOpp = p
	return f.oppID, f.oppErr
}

func testLead() domain.Lead {
	return domain.Lead{
		Name:        "Jordan Smith",
		Email:       "Jordan@Example.com",
		Phone:       "07700 900123",
		LoanType:    "Bridging Loan",
		LoanAmount:  250000,
		ProjectType: "Auction Purchase",
		Location:    "Maidstone",
		UTMSource:   "google",
		UTMCampaign: "kent-bridging",
	}
}

// ---- tests ----

func TestSubmit_BothStepsSucceed(t *testing.T) {
	crm := &fakeCRM{contactID: "c1", oppID: "o1"}
	res := app.NewLeadService(crm).Submit(context.Background(), testLead())

	if res.ContactID == nil || *res.ContactID != "c1" {
		t.Fatalf("contact id: %+v", res)
	}
	if res.OpportunityID == nil || *res.OpportunityID != "o1" {
		t.Fatalf("opportunity id: %+v", res)
	}
	if crm.upsertCalls != 1 || crm.oppCalls != 1 {
		t.Fatalf("calls: upsert=%d opp=%d", crm.upsertCalls, crm.oppCalls)
	}
	if crm.lastOpp["contactId"] != "c1" {
		t.Fatalf("opportunity not linked to contact: %+v", crm.lastOpp)
	}
}

func TestSubmit_UpsertFailureShortCircuits(t *testing.T) {
	crm := &fakeCRM{upsertErr: errors.New("upstream 500")}
	res := app.NewLeadService(crm).Submit(context.Background(), testLead())

	if res.ContactID != nil || res.OpportunityID != nil {
		t.Fatalf("want empty result, got %+v", res)
	}
	if crm.oppCalls != 0 {
		t.Fatalf("opportunity creation attempted after failed upsert")
	}
}

func TestSubmit_OpportunityFailureKeepsContact(t *testing.T) {
	crm := &fakeCRM{contactID: "c1", oppErr: errors.New("upstream 502")}
	res := app.NewLeadService(crm).Submit(context.Background(), testLead())

	if res.ContactID == nil || *res.ContactID != "c1" {
		t.Fatalf("contact id should survive opportunity failure: %+v", res)
	}
	if res.OpportunityID != nil {
		t.Fatalf("opportunity id should be absent: %+v", res)
	}
}

func TestSubmit_ContactPayloadShape(t *testing.T) {
	crm := &fakeCRM{contactID: "c1", oppID: "o1"}
	app.NewLeadService(crm).Submit(context.Background(), testLead())

	p := crm.lastContact
	if p["email"] != "jordan@example.com" {
		t.Fatalf("email not normalized: %v", p["email"])
	}
	if p["firstName"] != "Jordan" || p["lastName"] != "Smith" {
		t.Fatalf("name split: %v %v", p["firstName"], p["lastName"])
	}

	tags, _ := p["tags"].([]string)
	wantTags := []string{"website lead", "bridging loan", "project: auction purchase", "utm: google", "campaign: kent-bridging"}
	if len(tags) != len(wantTags) {
		t.Fatalf("tags = %v, want %v", tags, wantTags)
	}
	for i := range wantTags {
		if tags[i] != wantTags[i] {
			t.Fatalf("tag[%d] = %q, want %q", i, tags[i], wantTags[i])
		}
	}

	notes, _ := p["notes"].(string)
	if !strings.Contains(notes, "Loan amount: £250,000") {
		t.Fatalf("notes missing formatted amount:\n%s", notes)
	}
	if strings.Contains(notes, "Timeframe") || strings.Contains(notes, "Message") {
		t.Fatalf("notes contain lines for absent fields:\n%s", notes)
	}
}

func TestSubmit_OpportunityName(t *testing.T) {
	crm := &fakeCRM{contactID: "c1", oppID: "o1"}
	app.NewLeadService(crm).Submit(context.Background(), testLead())

	if got := crm.lastOpp["name"]; got != "Jordan Smith - Bridging Loan - £250,000" {
		t.Fatalf("opportunity name: %v", got)
	}

	// sparse lead: only populated parts appear
	crm2 := &fakeCRM{contactID: "c2", oppID: "o2"}
	app.NewLeadService(crm2).Submit(context.Background(), domain.Lead{Name: "Sam", Email: "s@example.com"})
	if got := crm2.lastOpp["name"]; got != "Sam" {
		t.Fatalf("sparse opportunity name: %v", got)
	}
}
