// Package codec implements the JSON wire contract shared by every
// transport in this module: one JSON document in, one JSON document
// out, with decode and encode failures reported as distinct error
// kinds that callers must let propagate.
package codec

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Void is the type parameter to use for handlers that take no request
// payload or produce no response payload.
type Void struct{}

var errEmptyPayload = errors.New("empty payload")

// Decode parses data as a single JSON document into a value of type T.
// The empty string is not a document and fails like any other
// malformed input. Every failure is an *UnmarshalError.
func Decode[T any](data string) (T, error) {
	var v T
	if data == "" {
		return v, &UnmarshalError{Data: data, Err: errEmptyPayload}
	}
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		var zero T
		return zero, &UnmarshalError{Data: data, Err: err}
	}
	return v, nil
}

// Encode renders v as JSON text. Every failure is a *MarshalError.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", &MarshalError{Value: v, Err: err}
	}
	return string(b), nil
}

// ValidJSON reports whether s is a well-formed JSON document.
func ValidJSON(s string) bool {
	return gjson.Valid(s)
}
