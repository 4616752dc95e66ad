package models

import (
	"encoding/json"
	"errors"
)

// ErrNotObject is returned when a body decodes to something other than a
// JSON object.
var ErrNotObject = errors.New("request body is not a JSON object")

// UntrustedRecord is a decoded request body. Every accessor treats a missing
// key, or a value that is not a string, as "".
type UntrustedRecord map[string]any

// DecodeUntrustedRecord parses data as a single JSON object.
func DecodeUntrustedRecord(data []byte) (UntrustedRecord, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return UntrustedRecord(object), nil
}

// Text returns the string value at key, or "".
func (r UntrustedRecord) Text(key string) string {
	if value, ok := r[key].(string); ok {
		return value
	}
	return ""
}

// CheckinSubmission promotes the record's check-in fields without
// normalizing them.
func (r UntrustedRecord) CheckinSubmission() CheckinSubmission {
	var s CheckinSubmission
	for name, p := range s.fields() {
		*p = r.Text(name)
	}
	return s
}

// EoiSubmission promotes the record's EOI fields without normalizing them.
func (r UntrustedRecord) EoiSubmission() EoiSubmission {
	var s EoiSubmission
	for name, p := range s.fields() {
		*p = r.Text(name)
	}
	return s
}
