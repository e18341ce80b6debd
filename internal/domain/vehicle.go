package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexValue is a field the recommendation service sends either as a JSON
// number or as a string. The received text is kept for display.
type FlexValue struct {
	Text    string
	Numeric bool
}

func (v FlexValue) String() string {
	return v.Text
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = FlexValue{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FlexValue{Text: s}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected number or string, got %s", data)
		}
		*v = FlexValue{Text: n.String(), Numeric: true}
	}
	return nil
}

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.Numeric && v.Text != "" {
		return []byte(v.Text), nil
	}
	return json.Marshal(v.Text)
}

// VehicleCandidate is one entry of the service's recommendations list.
// Fields beyond the known ones are kept in Extra and written back untouched.
type VehicleCandidate struct {
	ID              int64
	Brand           string
	Model           string
	Price           FlexValue
	Engine          string
	FuelConsumption FlexValue
	Extra           map[string]json.RawMessage

	// StringID is set when the id arrived as a JSON string. Such ids sort
	// with the others but never take a fixed display slot or medal.
	StringID bool

	// verbatim holds known fields whose JSON type differed from the Go
	// field, so they are written back as received.
	verbatim map[string]json.RawMessage
}

// NumericID reports the id and whether it was sent as a JSON number.
func (c VehicleCandidate) NumericID() (int64, bool) {
	return c.ID, !c.StringID
}

var knownCandidateFields = map[string]struct{}{
	"id": {}, "brand": {}, "model": {}, "price": {}, "engine": {}, "fuelConsumption": {},
}

func (c *VehicleCandidate) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode vehicle candidate: %w", err)
	}

	var out VehicleCandidate
	if idRaw, ok := raw["id"]; ok && !isNull(idRaw) {
		id, isString, err := parseID(idRaw)
		if err != nil {
			return err
		}
		out.ID = id
		if isString {
			out.StringID = true
			out.keepVerbatim("id", idRaw)
		}
	}

	texts := []struct {
		key string
		dst *string
	}{
		{"brand", &out.Brand},
		{"model", &out.Model},
		{"engine", &out.Engine},
	}
	for _, f := range texts {
		v, ok := raw[f.key]
		if !ok || isNull(v) {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			*f.dst = rawText(v)
			out.keepVerbatim(f.key, v)
		}
	}

	flex := []struct {
		key string
		dst *FlexValue
	}{
		{"price", &out.Price},
		{"fuelConsumption", &out.FuelConsumption},
	}
	for _, f := range flex {
		v, ok := raw[f.key]
		if !ok || isNull(v) {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			*f.dst = FlexValue{Text: rawText(v)}
			out.keepVerbatim(f.key, v)
		}
	}

	for k, v := range raw {
		if _, known := knownCandidateFields[k]; known {
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]json.RawMessage)
		}
		out.Extra[k] = v
	}

	*c = out
	return nil
}

func (c VehicleCandidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.fields())
}

func (c VehicleCandidate) fields() map[string]any {
	m := make(map[string]any, len(c.Extra)+6)
	for k, v := range c.Extra {
		m[k] = v
	}
	m["id"] = c.ID
	m["brand"] = c.Brand
	m["model"] = c.Model
	m["price"] = c.Price
	m["engine"] = c.Engine
	m["fuelConsumption"] = c.FuelConsumption
	for k, v := range c.verbatim {
		m[k] = v
	}
	return m
}

func (c *VehicleCandidate) keepVerbatim(key string, v json.RawMessage) {
	if c.verbatim == nil {
		c.verbatim = make(map[string]json.RawMessage)
	}
	c.verbatim[key] = v
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// rawText renders any JSON value as display text.
func rawText(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}

// parseID accepts integral numbers and strings. A string that is not a
// number keeps id 0.
func parseID(data []byte) (int64, bool, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		id, err := integral(json.Number(strings.TrimSpace(s)))
		if err != nil {
			return 0, true, nil
		}
		return id, true, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, false, fmt.Errorf("invalid candidate id %s", data)
	}
	id, err := integral(n)
	if err != nil {
		return 0, false, fmt.Errorf("invalid candidate id %s", data)
	}
	return id, false, nil
}

func integral(n json.Number) (int64, error) {
	if id, err := n.Int64(); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %s", n)
	}
	return int64(f), nil
}
