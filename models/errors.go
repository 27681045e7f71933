package models

import "errors"

// ErrDecode is returned when a response body cannot be decoded into the
// expected model: malformed JSON, an unexpected shape, or a missing required
// field. It is never replaced by a zero value.
var ErrDecode = errors.New("decode error")
