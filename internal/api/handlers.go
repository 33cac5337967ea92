package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"weightlog/internal/analysis/daterange"
	"weightlog/internal/crypto"
	"weightlog/internal/domain"
	"weightlog/internal/render"
	"weightlog/internal/services/tracker"
	"weightlog/internal/store"
	"weightlog/internal/transfer"
)

// AddDayRequest is the JSON body for POST /api/entries.
type AddDayRequest struct {
	Weight domain.Weight `json:"weight"`
	Notes  string        `json:"notes"`
}

// UpdateEntryRequest is the JSON body for PATCH /api/entries/{index}. Value
// may be a JSON string or number.
type UpdateEntryRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	d, err := s.tracker.Dataset()
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, d)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	var upd domain.Settings
	if !decodeBody(w, r, &upd) {
		return
	}
	d, err := s.tracker.UpdateSettings(upd)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, d)
}

func (s *Server) handleAddDay(w http.ResponseWriter, r *http.Request) {
	var req AddDayRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}
	e, err := s.tracker.AddDay(req.Weight, req.Notes)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonStatus(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}
	var req UpdateEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	value, err := textValue(req.Value)
	if err != nil {
		jsonError(w, "value must be a string or number", http.StatusBadRequest)
		return
	}
	e, err := s.tracker.UpdateEntry(idx, req.Field, value)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, e)
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}
	if err := s.tracker.RemoveEntry(idx); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	d, err := s.tracker.Dataset()
	if err != nil {
		s.fail(w, err)
		return
	}
	quick := r.URL.Query().Get("quick")
	if quick == "" {
		jsonOK(w, daterange.Default(d.Entries))
		return
	}
	kind, err := daterange.ParseKind(quick)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, daterange.Quick(d.Entries, kind))
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	f, err := s.filter(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	v, err := s.charts.Current(f)
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, v)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	ext := path.Ext(file)
	format, err := render.ParseFormat(ext)
	if err != nil {
		s.fail(w, err)
		return
	}
	kind := strings.TrimSuffix(file, ext)
	if kind != render.KindWeight && kind != render.KindVariance {
		jsonError(w, fmt.Sprintf("unknown chart %q", kind), http.StatusNotFound)
		return
	}

	f, err := s.filter(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	v, err := s.charts.Current(f)
	if err != nil {
		s.fail(w, err)
		return
	}

	// Render into a buffer so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := render.Draw(kind, v, &buf, format); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	b, err := s.tracker.Export(r.Header.Get(passphraseHeader))
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="weight-data.json"`)
	w.Header().Set("X-Fingerprint", crypto.Fingerprint(b))
	_, _ = w.Write(b)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	d, err := s.tracker.Import(raw, r.Header.Get(passphraseHeader))
	if err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, d)
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, s.prefs.Get())
}

func (s *Server) handleSetPrefs(w http.ResponseWriter, r *http.Request) {
	p := s.prefs.Get()
	if !decodeBody(w, r, &p) {
		return
	}
	if err := s.prefs.Set(p); err != nil {
		s.fail(w, err)
		return
	}
	jsonOK(w, p)
}

// filter reads year, from, to and quick from the query string.
func (s *Server) filter(r *http.Request) (daterange.Filter, error) {
	q := r.URL.Query()
	f := daterange.Filter{
		Year: q.Get("year"),
		From: daterange.NormalizeDate(q.Get("from")),
		To:   daterange.NormalizeDate(q.Get("to")),
	}
	return s.charts.Resolve(f, q.Get("quick"))
}

// fail maps service errors to HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transfer.ErrInvalidFile):
		jsonError(w, "Invalid JSON file", http.StatusBadRequest)
	case errors.Is(err, tracker.ErrEntryIndex),
		errors.Is(err, render.ErrNoData):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrWrongPassphrase):
		jsonError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, tracker.ErrUnknownField),
		errors.Is(err, tracker.ErrInvalidDate),
		errors.Is(err, daterange.ErrUnknownRange),
		errors.Is(err, transfer.ErrPassphraseRequired),
		errors.Is(err, render.ErrUnknownFormat):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		s.log.Error().Err(err).Msg("request failed")
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		jsonError(w, "index must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return idx, true
}

// textValue accepts a JSON string or number and returns its text.
func textValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(out); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func jsonOK(w http.ResponseWriter, data any) {
	jsonStatus(w, http.StatusOK, data)
}

func jsonStatus(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	jsonStatus(w, code, map[string]string{"error": msg})
}
