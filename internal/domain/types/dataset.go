package types

import (
	"bytes"
	"encoding/json"
)

// Dataset is everything the user tracks: the starting point, the goal and the
// dated entries.
type Dataset struct {
	StartDate    string  `json:"startDate"`
	StartWeight  Weight  `json:"startWeight"`
	TargetWeight Weight  `json:"targetWeight"`
	Entries      []Entry `json:"entries"`
}

// EmptyDataset returns the dataset used before anything has been recorded.
func EmptyDataset() Dataset {
	return Dataset{Entries: []Entry{}}
}

// UnmarshalJSON decodes a dataset, normalising a missing or non-array
// "entries" field to an empty sequence.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	type alias Dataset
	aux := struct {
		alias
		Entries json.RawMessage `json:"entries"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*d = Dataset(aux.alias)
	d.Entries = []Entry{}

	raw := bytes.TrimSpace(aux.Entries)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	return json.Unmarshal(raw, &d.Entries)
}

// Clone returns a copy whose entry slice can be modified independently.
func (d Dataset) Clone() Dataset {
	out := d
	out.Entries = make([]Entry, len(d.Entries))
	copy(out.Entries, d.Entries)
	return out
}
