package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"loanpages/internal/app"
	"loanpages/internal/domain"
)

type Handlers struct {
	C *app.ContentService
	L *app.LeadService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/pages", h.listKeys)
	s.mux.Get("/v1/pages/{region}/{locality}/{service}", h.getPage)
	s.mux.Get("/v1/services", h.listServices)
	s.mux.Get("/v1/guides", h.listGuides)
	s.mux.Get("/v1/guides/{slug}", h.getGuide)
	s.mux.Post("/v1/leads", h.submitLead)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON serves v with ETag/If-None-Match handling. Bundles are pure
// functions of their key, so the weak ETag is stable until the catalog or
// the generators change.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// getPage never 404s: unknown keys resolve to a degraded-but-complete
// bundle, which is exactly what the on-demand rendering layer needs.
func (h *Handlers) getPage(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	locality := chi.URLParam(r, "locality")
	service := chi.URLParam(r, "service")
	b := h.C.GetBundle(r.Context(), region, locality, service)
	writeJSON(w, r, b)
}

func (h *Handlers) listKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, struct {
		Items []domain.PageKey `json:"items"`
	}{Items: h.C.Keys()})
}

func (h *Handlers) listServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, struct {
		Items []domain.ServiceOffering `json:"items"`
	}{Items: h.C.ListServices()})
}

func (h *Handlers) listGuides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, struct {
		Items []domain.Guide `json:"items"`
	}{Items: h.C.ListGuides()})
}

func (h *Handlers) getGuide(w http.ResponseWriter, r *http.Request) {
	gv, ok := h.C.GetGuide(chi.URLParam(r, "slug"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "guide not found")
		return
	}
	writeJSON(w, r, gv)
}

// submitLead accepts the enquiry, runs the CRM pipeline and always answers
// 202: a CRM failure yields a result with absent ids, never an error page.
func (h *Handlers) submitLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON lead")
		return
	}
	if strings.TrimSpace(lead.Email) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Lead", "email is required")
		return
	}
	res := h.L.Submit(r.Context(), lead)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("failed to write lead result")
	}
}
