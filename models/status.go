package models

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Status is the availability of the game service as reported by the
// lightswitch endpoint.
type Status struct {
	ServiceInstanceID string   `json:"serviceInstanceId"`
	Status            string   `json:"status" validate:"required"`
	Message           string   `json:"message"`
	MaintenanceURI    string   `json:"maintenanceUri"`
	AllowedActions    []string `json:"allowedActions"`
	Banned            bool     `json:"banned"`
}

// StatusUp is the Status value of a running service.
const StatusUp = "UP"

// IsUp reports whether the service accepts logins.
func (s *Status) IsUp() bool {
	return s.Status == StatusUp
}

// DecodeStatus decodes a lightswitch response: a JSON array whose first
// element is the status of the requested service.
func DecodeStatus(body []byte) (*Status, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("status: %w: malformed json", ErrDecode)
	}

	head := gjson.GetBytes(body, "0")
	if !head.IsObject() {
		return nil, fmt.Errorf("status: %w: expected a non-empty array of objects", ErrDecode)
	}

	var status Status
	if err := Decode([]byte(head.Raw), &status); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return &status, nil
}
