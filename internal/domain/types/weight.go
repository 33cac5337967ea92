package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Weight is a recorded weight value kept in the text form it was entered in.
//
// A Weight may be blank (a day added but not yet weighed) or hold text that
// does not parse as a number. Computations treat both the same way: as no
// measurement.
type Weight string

// NewWeight returns the Weight for a float value.
func NewWeight(v float64) Weight {
	return Weight(strconv.FormatFloat(v, 'f', -1, 64))
}

// IsEmpty reports whether no value was entered.
func (w Weight) IsEmpty() bool { return strings.TrimSpace(string(w)) == "" }

// Float parses w and reports whether it holds a finite number.
func (w Weight) Float() (float64, bool) {
	if w.IsEmpty() {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(w)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// String returns the raw text form.
func (w Weight) String() string { return string(w) }

// MarshalJSON writes numeric weights as JSON numbers, blank weights as "" and
// anything else as the original string.
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.IsEmpty() {
		return []byte(`""`), nil
	}
	if v, ok := w.Float(); ok {
		return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
	}
	return json.Marshal(string(w))
}

// UnmarshalJSON accepts a number or a string. Any other JSON value (null, a
// boolean, an object or an array) decodes to a blank Weight.
func (w *Weight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*w = ""
		return nil
	}
	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = Weight(s)
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*w = Weight(n.String())
	default:
		*w = ""
	}
	return nil
}
