package uptime

import (
	"bytes"
	"encoding/json"
)

// Unknown is reported in place of a value the upstream did not provide.
const Unknown = "Unknown"

// Number is a numeric field that serializes as "Unknown" when absent.
type Number struct {
	Value float64
	Known bool
}

func KnownNumber(v float64) Number {
	return Number{Value: v, Known: true}
}

func UnknownNumber() Number {
	return Number{}
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Known {
		return json.Marshal(Unknown)
	}
	return json.Marshal(n.Value)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	if len(b) > 0 && b[0] == '"' {
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = KnownNumber(v)
	return nil
}

// Record is the per-validator summary served to the dashboard.
type Record struct {
	Name                 string `json:"name"`
	Uptime               Number `json:"uptime"`
	Location             string `json:"location"`
	ExpirationDate       string `json:"expiration_date"`
	ExpiresIn            string `json:"expires_in,omitempty"`
	StakeFromSelf        Number `json:"stake_from_self"`
	StakeFromDelegations Number `json:"stake_from_delegations"`
}

// Entry is either a Record or a placeholder string explaining why there is none.
type Entry struct {
	Record      *Record
	Placeholder string
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Record != nil {
		return json.Marshal(e.Record)
	}
	return json.Marshal(e.Placeholder)
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	*e = Entry{}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &e.Placeholder)
	}
	e.Record = &Record{}
	return json.Unmarshal(b, e.Record)
}

// Report maps node IDs to their entries.
type Report map[string]Entry
