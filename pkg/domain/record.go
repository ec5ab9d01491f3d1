package domain

import "time"

// Record is a derived result handed to the persistence collaborator.
// The engine builds it after the pure evaluation so that Result stays
// free of timestamps and random IDs.
type Record struct {
	Operation      Operation `json:"operation"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Theme          string    `json:"theme,omitempty"`
	Result         any       `json:"result"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
}
