package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weightlog/internal/analysis/daterange"
	"weightlog/internal/domain"
	"weightlog/internal/services/charts"
)

// Client talks to a running weightlog API.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for the API at base, e.g. "http://localhost:8080".
func NewClient(base string) *Client { return &Client{Base: base, HTTP: http.DefaultClient} }

// Dataset fetches the dataset.
func (c *Client) Dataset(ctx context.Context) (domain.Dataset, error) {
	var out domain.Dataset
	if err := c.do(ctx, http.MethodGet, "/api/dataset", nil, nil, &out); err != nil {
		return domain.Dataset{}, err
	}
	return out, nil
}

// UpdateSettings applies a partial settings update.
func (c *Client) UpdateSettings(ctx context.Context, s domain.Settings) (domain.Dataset, error) {
	var out domain.Dataset
	if err := c.do(ctx, http.MethodPut, "/api/settings", s, nil, &out); err != nil {
		return domain.Dataset{}, err
	}
	return out, nil
}

// AddDay adds the next day.
func (c *Client) AddDay(ctx context.Context, weight domain.Weight, notes string) (domain.Entry, error) {
	var out domain.Entry
	if err := c.do(ctx, http.MethodPost, "/api/entries", AddDayRequest{Weight: weight, Notes: notes}, nil, &out); err != nil {
		return domain.Entry{}, err
	}
	return out, nil
}

// UpdateEntry sets one field of the entry at index (0-based).
func (c *Client) UpdateEntry(ctx context.Context, index int, field, value string) (domain.Entry, error) {
	v, err := json.Marshal(value)
	if err != nil {
		return domain.Entry{}, err
	}
	var out domain.Entry
	if err := c.do(ctx, http.MethodPatch, "/api/entries/"+strconv.Itoa(index), UpdateEntryRequest{Field: field, Value: v}, nil, &out); err != nil {
		return domain.Entry{}, err
	}
	return out, nil
}

// RemoveEntry deletes the entry at index (0-based).
func (c *Client) RemoveEntry(ctx context.Context, index int) error {
	return c.do(ctx, http.MethodDelete, "/api/entries/"+strconv.Itoa(index), nil, nil, nil)
}

// View fetches the chart view for f, with quick replacing From/To when set.
func (c *Client) View(ctx context.Context, f daterange.Filter, quick string) (charts.View, error) {
	q := url.Values{}
	for k, v := range map[string]string{"year": f.Year, "from": f.From, "to": f.To, "quick": quick} {
		if v != "" {
			q.Set(k, v)
		}
	}
	p := "/api/view"
	if len(q) > 0 {
		p += "?" + q.Encode()
	}
	var out charts.View
	if err := c.do(ctx, http.MethodGet, p, nil, nil, &out); err != nil {
		return charts.View{}, err
	}
	return out, nil
}

// Prefs fetches the preferences.
func (c *Client) Prefs(ctx context.Context) (domain.Prefs, error) {
	var out domain.Prefs
	if err := c.do(ctx, http.MethodGet, "/api/prefs", nil, nil, &out); err != nil {
		return domain.Prefs{}, err
	}
	return out, nil
}

// SetPrefs replaces the preferences.
func (c *Client) SetPrefs(ctx context.Context, p domain.Prefs) error {
	return c.do(ctx, http.MethodPut, "/api/prefs", p, nil, nil)
}

// Export downloads an export file, sealed when passphrase is set.
func (c *Client) Export(ctx context.Context, passphrase string) ([]byte, error) {
	var out bytes.Buffer
	if err := c.do(ctx, http.MethodGet, "/api/export", nil, passphraseHeaders(passphrase), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Import uploads an export file.
func (c *Client) Import(ctx context.Context, raw []byte, passphrase string) (domain.Dataset, error) {
	var out domain.Dataset
	if err := c.do(ctx, http.MethodPost, "/api/import", bytes.NewReader(raw), passphraseHeaders(passphrase), &out); err != nil {
		return domain.Dataset{}, err
	}
	return out, nil
}

func passphraseHeaders(passphrase string) http.Header {
	if passphrase == "" {
		return nil
	}
	h := http.Header{}
	h.Set(passphraseHeader, passphrase)
	return h
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method, Path string
	Status       int
	Message      string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("api %s %s: %d", e.Method, e.Path, e.Status)
}

// do sends in as JSON (an io.Reader is sent as is) and decodes the response
// into out. A *bytes.Buffer out receives the body unparsed.
func (c *Client) do(ctx context.Context, method, path string, in any, h http.Header, out any) error {
	var body io.Reader
	switch v := in.(type) {
	case nil:
	case io.Reader:
		body = v
	default:
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range h {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode, Message: e.Error}
	}
	switch o := out.(type) {
	case nil:
		return nil
	case *bytes.Buffer:
		_, err := o.ReadFrom(resp.Body)
		return err
	default:
		return json.NewDecoder(resp.Body).Decode(out)
	}
}
