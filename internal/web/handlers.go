package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/core"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/logging"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/web/templates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// criteriaFromQuery reads the category, size and thickness selections.
func criteriaFromQuery(r *http.Request) core.Criteria {
	q := r.URL.Query()
	return core.ParseCriteria(q.Get("category"), q.Get("size"), q.Get("thickness"))
}

// renderPage writes an HTML component with the given status.
func renderPage(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

// handlePage renders the search page. With check=1 it also answers the
// availability question for the filtered records.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	session, err := s.current()
	if err != nil {
		renderPage(w, r, http.StatusServiceUnavailable,
			templates.HaltedPage(core.MapError(err), "Stock folder: "+s.cfg.Stock.Dir))
		return
	}

	q := r.URL.Query()
	c := criteriaFromQuery(r)
	records := core.Filter(session.Table, c)
	s.metrics.ObserveSearch(len(records))

	data := templates.PageData{
		Session:  session,
		Now:      s.now(),
		Criteria: c,
		Quantity: q.Get("quantity"),
		Records:  records,
	}

	status := http.StatusOK
	if q.Get("check") == "1" {
		data.Checked = true
		results, err := s.checkQuantity(records, data.Quantity)
		if err != nil {
			msg := core.MapError(err)
			data.QuantityError = &msg
			status = http.StatusBadRequest
		}
		data.Results = results
	}

	renderPage(w, r, status, templates.Page(data))
}

// checkQuantity parses the raw quantity and answers it for records.
func (s *Server) checkQuantity(records []core.PipeRecord, rawQuantity string) ([]core.AvailabilityResult, error) {
	qty, err := core.ParseQuantity(rawQuantity)
	if err != nil {
		return nil, err
	}
	return s.checkAvailability(records, qty)
}

// checkAvailability answers qty for records and records the outcome.
func (s *Server) checkAvailability(records []core.PipeRecord, qty int) ([]core.AvailabilityResult, error) {
	results, err := core.CheckAvailability(records, qty)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveAvailability(results)
	return results, nil
}

// sessionResponse describes the loaded session.
type sessionResponse struct {
	*core.Session
	DateLabel string `json:"dateLabel"`
	Records   int    `json:"records"`
}

func newSessionResponse(s *core.Session) sessionResponse {
	return sessionResponse{
		Session:   s,
		DateLabel: s.File.DateLabel(),
		Records:   s.Table.Len(),
	}
}

// handleSession returns the active session's metadata.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	writeJSON(w, r, http.StatusOK, newSessionResponse(session))
}

// handleOptions returns the values offered by each selection widget.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	writeJSON(w, r, http.StatusOK, session.Options)
}

// recordsResponse is the result of a filter request.
type recordsResponse struct {
	Criteria core.Criteria     `json:"criteria"`
	Active   bool              `json:"active"`
	Count    int               `json:"count"`
	Records  []core.PipeRecord `json:"records"`
	Message  string            `json:"message,omitempty"`
}

// handleRecords returns the records matching the query's criteria.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	c := criteriaFromQuery(r)
	records := core.Filter(session.Table, c)
	s.metrics.ObserveSearch(len(records))

	resp := recordsResponse{
		Criteria: c,
		Active:   c.Active(),
		Count:    len(records),
		Records:  records,
	}
	if len(records) == 0 {
		resp.Message = templates.MsgNoMatches
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// availabilityResponse is the result of an availability request.
type availabilityResponse struct {
	Criteria core.Criteria             `json:"criteria"`
	Quantity int                       `json:"quantity"`
	Count    int                       `json:"count"`
	Results  []core.AvailabilityResult `json:"results"`
	Message  string                    `json:"message,omitempty"`
}

// handleAvailability answers quantity for every record matching the criteria.
func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	c := criteriaFromQuery(r)
	records := core.Filter(session.Table, c)
	s.metrics.ObserveSearch(len(records))

	qty, err := core.ParseQuantity(r.URL.Query().Get("quantity"))
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}
	results, err := s.checkAvailability(records, qty)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	resp := availabilityResponse{
		Criteria: c,
		Quantity: qty,
		Count:    len(results),
		Results:  results,
	}
	if len(results) == 0 {
		resp.Message = templates.MsgNoneSelected
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// handleExportAvailability downloads the availability results as a workbook.
func (s *Server) handleExportAvailability(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	records := core.Filter(session.Table, criteriaFromQuery(r))

	results, err := s.checkQuantity(records, r.URL.Query().Get("quantity"))
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := core.WriteAvailabilityWorkbook(&buf, results); err != nil {
		respondError(w, r, fmt.Errorf("export availability: %w", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("availability-%s.xlsx", session.File.DateLabel())
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("export write failed", "error", err)
	}
}

// handleReload re-runs the loader. Form posts are redirected back to the
// page, which shows either the new session or the halted state.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	err := s.Reload(r.Context())

	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	session, err := s.current()
	if err != nil {
		respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, r, http.StatusOK, newSessionResponse(session))
}

// healthResponse reports whether a session is being served.
type healthResponse struct {
	Status   string     `json:"status"`
	File     string     `json:"file,omitempty"`
	Records  int        `json:"records"`
	LoadedAt *time.Time `json:"loadedAt,omitempty"`
	Code     string     `json:"code,omitempty"`
}

// handleHealth returns 200 while a session is loaded and 503 while halted.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	session, err := s.current()
	if err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, healthResponse{
			Status: "halted",
			Code:   core.MapError(err).Code,
		})
		return
	}
	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:   "ok",
		File:     session.File.Name,
		Records:  session.Table.Len(),
		LoadedAt: &session.LoadedAt,
	})
}
