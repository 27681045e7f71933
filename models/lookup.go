package models

// Lookup is the account matching a display name.
type Lookup struct {
	ID            string         `json:"id" validate:"required"`
	DisplayName   string         `json:"displayName" validate:"required"`
	ExternalAuths map[string]any `json:"externalAuths,omitempty"`
}
