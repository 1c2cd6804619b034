package analysis

import "github.com/trustrails/adviser-shield/internal/registry"

// Severity weights and adjustments for the additive risk model
const (
	weightHigh   = 40
	weightMedium = 18
	weightLow    = 6

	invalidRegistrationPenalty = 40
	validRegistrationCredit    = 8

	highSeverityFloor        = 70
	invalidRegistrationFloor = 75

	highRiskThreshold   = 70
	mediumRiskThreshold = 40
)

// ComputeRisk combines scanner violations and an optional registration check
// into a score in [0,100] and a verdict. Accumulation is order-independent.
//
// The floors are deliberate: a single HIGH violation or a confirmed-invalid
// registration must not be diluted to a low aggregate by the additive model.
func ComputeRisk(violations []Violation, regCheck *registry.RegistrationCheck) RiskAssessment {
	score := 0
	hasHigh := false

	for _, v := range violations {
		switch v.Severity {
		case SeverityHigh:
			score += weightHigh
			hasHigh = true
		case SeverityMedium:
			score += weightMedium
		default:
			score += weightLow
		}
	}

	if regCheck != nil {
		if !regCheck.Valid {
			score += invalidRegistrationPenalty
		} else {
			score -= validRegistrationCredit
			if score < 0 {
				score = 0
			}
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	if hasHigh && score < highSeverityFloor {
		score = highSeverityFloor
	}
	if regCheck != nil && !regCheck.Valid && score < invalidRegistrationFloor {
		score = invalidRegistrationFloor
	}

	return RiskAssessment{
		RiskScore: score,
		Verdict:   verdictFor(score),
	}
}

func verdictFor(score int) Verdict {
	switch {
	case score >= highRiskThreshold:
		return VerdictHighRisk
	case score >= mediumRiskThreshold:
		return VerdictMediumRisk
	default:
		return VerdictLowRisk
	}
}
