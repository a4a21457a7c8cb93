package avascan

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/stakestar/avaxtracker/utils"
)

var jsonNull = []byte("null")

// Validation is one item of the staking/validations listing.
type Validation struct {
	NodeID  string `json:"nodeId"`
	Name    string `json:"name"`
	EndTime string `json:"endTime"`
	Node    Node   `json:"node"`
	Stake   Stake  `json:"stake"`
}

type Node struct {
	IP       string   `json:"ip"`
	Uptime   Uptime   `json:"uptime"`
	Location Location `json:"location"`
}

type Uptime struct {
	Avg Float `json:"avg"`
}

type Location struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// Stake amounts are denominated in nAVAX.
type Stake struct {
	FromSelf        Amount `json:"fromSelf"`
	FromDelegations Amount `json:"fromDelegations"`
}

type validationsResponse struct {
	Items []Validation `json:"items"`
}

// decodeLenient decodes a JSON object into v. Fields whose JSON type does not
// match are left at their zero value and anything but an object leaves v
// untouched, so one odd field never discards the rest of the payload.
func decodeLenient(b []byte, v interface{}) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	err := json.Unmarshal(b, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

func (v *Validation) UnmarshalJSON(b []byte) error {
	type plain Validation
	var p plain
	if err := decodeLenient(b, &p); err != nil {
		return err
	}
	*v = Validation(p)
	return nil
}

func (n *Node) UnmarshalJSON(b []byte) error {
	type plain Node
	var p plain
	if err := decodeLenient(b, &p); err != nil {
		return err
	}
	*n = Node(p)
	return nil
}

func (u *Uptime) UnmarshalJSON(b []byte) error {
	type plain Uptime
	var p plain
	if err := decodeLenient(b, &p); err != nil {
		return err
	}
	*u = Uptime(p)
	return nil
}

func (l *Location) UnmarshalJSON(b []byte) error {
	type plain Location
	var p plain
	if err := decodeLenient(b, &p); err != nil {
		return err
	}
	*l = Location(p)
	return nil
}

func (s *Stake) UnmarshalJSON(b []byte) error {
	type plain Stake
	var p plain
	if err := decodeLenient(b, &p); err != nil {
		return err
	}
	*s = Stake(p)
	return nil
}

// Float is a JSON number that may be missing or replaced by a non-numeric
// placeholder upstream. Anything but a JSON number leaves it invalid.
type Float struct {
	Value float64
	Valid bool
}

func (f *Float) UnmarshalJSON(b []byte) error {
	*f = Float{}
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = Float{Value: v, Valid: true}
	return nil
}

// Amount is a non-negative integer amount sent either as a JSON number or as
// a decimal string. A numeric zero, null, empty and unparseable values are
// invalid; a quoted "0" is a valid zero.
type Amount struct {
	Value uint64
	Valid bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	if bytes.Equal(b, jsonNull) || len(b) == 0 {
		return nil
	}

	raw := string(b)
	quoted := b[0] == '"'
	if quoted {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = s
	}

	v, ok := parseAmount(raw)
	if !ok || (v == 0 && !quoted) {
		return nil
	}
	*a = Amount{Value: v, Valid: true}
	return nil
}

func parseAmount(raw string) (uint64, bool) {
	if v, err := utils.StringToUint64(raw); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}
