package codec

import (
	"errors"
	"fmt"
)

// UnmarshalError reports an inbound payload that could not be decoded
// into the handler's input type. It always wraps the underlying cause.
type UnmarshalError struct {
	Data string
	Err  error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("codec: unmarshal %s: %v", snippet(e.Data), e.Err)
}

func (e *UnmarshalError) Unwrap() error { return e.Err }

// MarshalError reports an outbound value that could not be encoded to
// JSON. It always wraps the underlying cause.
type MarshalError struct {
	Value any
	Err   error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("codec: marshal %T: %v", e.Value, e.Err)
}

func (e *MarshalError) Unwrap() error { return e.Err }

// IsUnmarshalError reports whether any error in err's chain is an
// *UnmarshalError.
func IsUnmarshalError(err error) bool {
	var e *UnmarshalError
	return errors.As(err, &e)
}

// IsMarshalError reports whether any error in err's chain is a
// *MarshalError.
func IsMarshalError(err error) bool {
	var e *MarshalError
	return errors.As(err, &e)
}

// snippet caps payload text quoted in error messages so oversized
// bodies do not flood logs.
func snippet(data string) string {
	const max = 256
	if len(data) > max {
		return fmt.Sprintf("%q...", data[:max])
	}
	return fmt.Sprintf("%q", data)
}
