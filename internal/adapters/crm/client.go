package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"loanpages/internal/adapters/observability"
)

// Error taxonomy for the two-step lead write. The app layer catches all of
// these at its boundary; nothing here retries (transient upstream failures
// surface as *UpstreamError and are logged for manual follow-up).

// ConfigError means a required credential or identifier is missing. Raised
// before any network call is attempted.
type ConfigError struct{ Key string }

func (e *ConfigError) Error() string { return "crm: missing configuration " + e.Key }

// UpstreamError means the CRM answered with a non-success status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("crm: upstream status %d: %s", e.Status, e.Body)
}

// ErrMissingID means the call succeeded but the response carried no id.
var ErrMissingID = errors.New("crm: response missing identifier")

// Credentials are resolved from the environment at call time, not cached at
// construction, so a rotated key takes effect without a restart.
type Credentials struct {
	Token      string
	LocationID string
}

type CredentialSource func() (Credentials, error)

// EnvCredentials reads CRM_API_KEY and CRM_LOCATION_ID.
func EnvCredentials() (Credentials, error) {
	token := os.Getenv("CRM_API_KEY")
	if token == "" {
		return Credentials{}, &ConfigError{Key: "CRM_API_KEY"}
	}
	loc := os.Getenv("CRM_LOCATION_ID")
	if loc == "" {
		return Credentials{}, &ConfigError{Key: "CRM_LOCATION_ID"}
	}
	return Credentials{Token: token, LocationID: loc}, nil
}

type Client struct {
	base  string
	hc    *http.Client
	creds CredentialSource
	rl    *rate.Limiter
}

// New builds a client against base (e.g. https://api.crm.example/v1).
// creds may be nil, in which case the environment is consulted per call.
func New(base string, creds CredentialSource, rps int) *Client {
	if creds == nil {
		creds = EnvCredentials
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		hc:    &http.Client{Timeout: 15 * time.Second},
		creds: creds,
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// UpsertContact POSTs to /contacts/upsert (idempotent on email) and returns
// the contact id.
func (c *Client) UpsertContact(ctx context.Context, payload map[string]any) (string, error) {
	var out map[string]any
	if err := c.post(ctx, "/contacts/upsert", payload, &out); err != nil {
		return "", err
	}
	id := nestedID(out, "contact")
	if id == "" {
		return "", ErrMissingID
	}
	return id, nil
}

// CreateOpportunity POSTs to /opportunities/ (always creates) and returns
// the opportunity id.
func (c *Client) CreateOpportunity(ctx context.Context, payload map[string]any) (string, error) {
	var out map[string]any
	if err := c.post(ctx, "/opportunities/", payload, &out); err != nil {
		return "", err
	}
	id := nestedID(out, "opportunity")
	if id == "" {
		return "", ErrMissingID
	}
	return id, nil
}

// post performs one JSON POST with client-side rate limiting and a bounded
// timeout. Deliberately no retries: a transient CRM failure is reported,
// not replayed. The location id from the call-time credentials is stamped
// onto a copy of the payload; the caller's map is never mutated.
func (c *Client) post(ctx context.Context, path string, payload map[string]any, out any) error {
	creds, err := c.creds()
	if err != nil {
		return err
	}
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["locationId"] = creds.LocationID

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Version", "2021-07-28")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("crm", path, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// Timeouts and transport failures count as upstream failures.
		return &UpstreamError{Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("crm", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// nestedID digs out {<entity>:{id:"..."}} with a top-level {id:"..."}
// fallback, tolerating either shape of CRM response.
func nestedID(m map[string]any, entity string) string {
	if inner, ok := m[entity].(map[string]any); ok {
		if id, ok := inner["id"].(string); ok {
			return id
		}
	}
	if id, ok := m["id"].(string); ok {
		return id
	}
	return ""
}
