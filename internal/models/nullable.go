package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
)

// NullString is a string field of a partial update. Set reports whether the
// key was present in the body; Valid is false when it was an explicit null.
type NullString struct {
	Set    bool
	Valid  bool
	String string
}

// SetString returns a present, non-null NullString.
func SetString(s string) NullString {
	return NullString{Set: true, Valid: true, String: s}
}

// UnmarshalJSON is only called for keys present in the body.
func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		n.String = ""
		return nil
	}
	if err := json.Unmarshal(data, &n.String); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer, writing NULL for an explicit null.
func (n NullString) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.String, nil
}

// Ptr returns the value as an optional string.
func (n NullString) Ptr() *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

// NullIfEmpty turns "" into an explicit null, for columns where an empty
// string means "no value".
func (n NullString) NullIfEmpty() NullString {
	if n.Valid && n.String == "" {
		n.Valid = false
	}
	return n
}
