package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// mapHTTPError returns nil for a 2xx response and otherwise an error wrapping
// [ErrTransport] and, when the status has one, its sentinel. The upstream
// errorMessage/errorCode fields are preferred over the raw body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), msg)
	}

	return fmt.Errorf("%w: %w: %s", ErrTransport, sentinel, msg)
}

// errorMessage extracts "<errorCode>: <errorMessage>" from an upstream error
// body, falling back to the trimmed body when it is not an error document.
func errorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		fields := gjson.GetManyBytes(body, "errorCode", "errorMessage")
		code, message := fields[0].String(), fields[1].String()
		switch {
		case code != "" && message != "":
			return code + ": " + message
		case message != "":
			return message
		case code != "":
			return code
		}
	}

	return strings.TrimSpace(string(body))
}

// IsRejected reports whether err is a refusal that repeating the same request
// cannot fix (a 4xx other than 429).
func IsRejected(err error) bool {
	for _, target := range []error{ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
