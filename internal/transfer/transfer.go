package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"weightlog/internal/analysis/variance"
	"weightlog/internal/domain"
	"weightlog/internal/store"
)

var (
	// ErrInvalidFile is returned when an import is not a JSON object.
	ErrInvalidFile = errors.New("invalid JSON file")
	// ErrPassphraseRequired is returned when a sealed export is imported
	// without a passphrase.
	ErrPassphraseRequired = errors.New("export is sealed; a passphrase is required")
)

// Payload is the decoded content of an export file.
//
// Prefs is nil when the file carried none (legacy exports).
type Payload struct {
	Data  domain.Dataset `json:"data"`
	Prefs *domain.Prefs  `json:"prefs,omitempty"`
}

// Encode serialises d and p as an export file, sealing it when passphrase is
// not empty.
func Encode(d domain.Dataset, p domain.Prefs, passphrase string) ([]byte, error) {
	if d.Entries == nil {
		d.Entries = []domain.Entry{}
	}
	b, err := json.MarshalIndent(Payload{Data: d, Prefs: &p}, "", "  ")
	if err != nil {
		return nil, err
	}
	if passphrase == "" {
		return b, nil
	}
	return store.Seal(passphrase, b)
}

// Decode parses an export file. The returned dataset always has its entry
// variances re-derived.
func Decode(raw []byte, passphrase string) (Payload, error) {
	raw = bytes.TrimSpace(raw)
	if store.IsSealed(raw) {
		if passphrase == "" {
			return Payload{}, ErrPassphraseRequired
		}
		pt, err := store.Open(passphrase, raw)
		if err != nil {
			return Payload{}, err
		}
		raw = pt
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return Payload{}, invalid(err)
	}

	var out Payload
	data := raw
	if d, ok := top["data"]; ok && isObject(d) {
		data = d
	}
	if err := json.Unmarshal(data, &out.Data); err != nil {
		return Payload{}, invalid(err)
	}
	out.Data.Entries = variance.Derive(out.Data.Entries)

	if p, ok := top["prefs"]; ok && isObject(p) {
		prefs := domain.DefaultPrefs()
		if err := json.Unmarshal(p, &prefs); err != nil {
			return Payload{}, invalid(err)
		}
		out.Prefs = &prefs
	}
	return out, nil
}

func invalid(err error) error {
	if err == nil {
		return ErrInvalidFile
	}
	return fmt.Errorf("%w: %v", ErrInvalidFile, err)
}

func isObject(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
