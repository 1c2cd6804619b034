package registry

import "strings"

// Record is a single directory entry for a registered adviser or analyst.
type Record struct {
	RegNo      string `json:"reg_no"`
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
	Status     string `json:"status"`
}

// Active reports whether the record's status permits advisory activity.
// Status casing is not under our control in external registry data.
func (r Record) Active() bool {
	return strings.EqualFold(r.Status, "Active")
}

// RegistrationCheck is the outcome of verifying a claimed registration
// number against the directory.
type RegistrationCheck struct {
	Valid             bool    `json:"valid"`
	Reason            string  `json:"reason"`
	Details           *Record `json:"details,omitempty"`
	ExtractedFromText bool    `json:"extracted_from_text,omitempty"`
	Attempted         string  `json:"attempted,omitempty"`
}

// VerifyRequest is the payload for the direct verification endpoint
type VerifyRequest struct {
	RegNo string `json:"reg_no" validate:"required"`
}
