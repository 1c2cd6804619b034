package analysis

import (
	"github.com/trustrails/adviser-shield/internal/enrichment"
	"github.com/trustrails/adviser-shield/internal/registry"
)

// Severity classifies how serious a red-flag rule is
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// Verdict is the discrete risk tier derived from the risk score
type Verdict string

const (
	VerdictHighRisk   Verdict = "HIGH_RISK"
	VerdictMediumRisk Verdict = "MEDIUM_RISK"
	VerdictLowRisk    Verdict = "LOW_RISK"
	VerdictUnknown    Verdict = "UNKNOWN"
)

// Disclaimer accompanies every analysis result
const Disclaimer = "automated text-based compliance checks only, not legal advice"

// Violation is the evidence produced when a red-flag rule matches the input
type Violation struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Matches     []string `json:"matches"`
	Guidance    string   `json:"guidance,omitempty"`
}

// RiskAssessment is the numeric score plus its tier
type RiskAssessment struct {
	RiskScore int     `json:"risk_score"`
	Verdict   Verdict `json:"verdict"`
}

// Input carries one analysis request through the engine
type Input struct {
	Text      string
	ClaimedID string

	// MaxChars truncates Text before scanning; 0 means the engine default.
	MaxChars int

	// SkipVerification leaves Registration null in the result. The tip
	// endpoint uses this: a bare stock tip carries no identity claim.
	SkipVerification bool

	// RequireContactInfo adds the UNVERIFIABLE_IDENTITY violation when the
	// registration check fails and the text has no contact signals. The bio
	// endpoint uses this.
	RequireContactInfo bool
}

// Result is the full analysis response
type Result struct {
	Violations      []Violation                 `json:"violations"`
	Registration    *registry.RegistrationCheck `json:"registration"`
	RiskScore       int                         `json:"risk_score"`
	Verdict         Verdict                     `json:"verdict"`
	Recommendations []string                    `json:"recommendations"`
	Summary         string                      `json:"summary"`
	ML              *enrichment.Classification  `json:"ml,omitempty"`
	Disclaimer      string                      `json:"disclaimer"`
}

// AnalyzeBioRequest is the request body for bio analysis
type AnalyzeBioRequest struct {
	Bio   string `json:"bio" validate:"required"`
	RegNo string `json:"reg_no"`
}

// AnalyzeTipRequest is the request body for tip analysis
type AnalyzeTipRequest struct {
	Tip string `json:"tip" validate:"required"`
}

// AnalyzeDocumentRequest is the JSON request body for document analysis
type AnalyzeDocumentRequest struct {
	Text string `json:"text"`
}
