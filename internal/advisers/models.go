package advisers

import (
	"time"

	"github.com/google/uuid"

	"github.com/trustrails/adviser-shield/internal/analysis"
)

// Adviser is a submitted adviser profile together with the verdict its bio
// received at intake time.
type Adviser struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	RegNo     string           `json:"reg_no,omitempty"`
	Bio       string           `json:"bio"`
	RiskScore int              `json:"risk_score"`
	Verdict   analysis.Verdict `json:"verdict"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CreateAdviserRequest is the intake payload
type CreateAdviserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=200"`
	RegNo string `json:"reg_no"`
	Bio   string `json:"bio" validate:"required"`
}

// AdviserResponse pairs the stored record with the full analysis produced
// at intake
type AdviserResponse struct {
	Adviser  *Adviser         `json:"adviser"`
	Analysis *analysis.Result `json:"analysis,omitempty"`
}
