package types

import "encoding/json"

// NullableString distinguishes a JSON field that is absent from one that is
// present (including present-and-null). Partial update payloads rely on this
// to leave absent fields untouched.
type NullableString struct {
	Value string
	Valid bool // Valid is true if the field was present in the payload
}

func (ns NullableString) String() string {
	if ns.Valid {
		return ns.Value
	}
	return ""
}

func (ns NullableString) IsNil() bool {
	return !ns.Valid
}

func (ns *NullableString) Set(value string) {
	ns.Value = value
	ns.Valid = true
}

var _ json.Marshaler = &NullableString{}
var _ json.Unmarshaler = &NullableString{}
var _ Nullable = &NullableString{}

func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.Valid {
		return json.Marshal(ns.Value)
	}
	return json.Marshal(nil)
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		ns.Value = ""
		ns.Valid = false
		return nil
	}
	ns.Valid = true
	return json.Unmarshal(data, &ns.Value)
}
