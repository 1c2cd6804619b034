package analysis

import "github.com/trustrails/adviser-shield/internal/registry"

// maxRecommendations caps the advisory list
const maxRecommendations = 8

const (
	recAvoidEngaging      = "Avoid engaging: SEBI registration appears invalid/not found/suspended."
	recVerifyRegistration = "Verify the adviser's SEBI registration on the official registry."
	recRequestDisclosures = "Request written disclosures of risks, fees, and conflicts of interest."
)

// BuildRecommendations derives the user-facing action list from violations
// and the registration outcome. A check that failed on a concrete
// identifier warrants the strong "avoid engaging" advisory; a check that
// failed only because no identifier was supplied, or that was skipped
// entirely, gets the milder "verify registration" one. The list is
// deduplicated in first-seen order, never empty, and capped at 8 entries.
func BuildRecommendations(violations []Violation, regCheck *registry.RegistrationCheck) []string {
	recs := make([]string, 0, len(violations)+1)

	switch {
	case regCheck != nil && !regCheck.Valid && (regCheck.Attempted != "" || regCheck.Details != nil):
		recs = append(recs, recAvoidEngaging)
	case regCheck == nil || !regCheck.Valid:
		recs = append(recs, recVerifyRegistration)
	}

	seen := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		seen[r] = struct{}{}
	}

	for _, v := range violations {
		if v.Guidance == "" {
			continue
		}
		if _, dup := seen[v.Guidance]; dup {
			continue
		}
		seen[v.Guidance] = struct{}{}
		recs = append(recs, v.Guidance)
	}

	if len(recs) == 0 {
		recs = append(recs, recRequestDisclosures)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return recs
}
