// Package field provides a tri-state wrapper for JSON request fields which
// must distinguish "absent" from "explicitly null" from "present with a
// value". A plain pointer collapses the first two cases.
package field

import "encoding/json"

type Optional[T any] struct {
	Value T
	Valid bool // present and non-null
	Set   bool // key appeared in the payload
}

// UnmarshalJSON is only invoked for keys present in the payload, so Set
// records presence and Valid records non-nullness.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
