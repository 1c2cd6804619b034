package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustrails/adviser-shield/internal/registry"
)

func TestBuildRecommendations_RegistrationAdvisories(t *testing.T) {
	tests := []struct {
		name     string
		regCheck *registry.RegistrationCheck
		first    string
	}{
		{
			name:     "failed on attempted identifier",
			regCheck: &registry.RegistrationCheck{Valid: false, Attempted: "INA000000001"},
			first:    recAvoidEngaging,
		},
		{
			name: "failed on suspended record",
			regCheck: &registry.RegistrationCheck{
				Valid:   false,
				Details: &registry.Record{RegNo: "RA000987654", Status: "Suspended"},
			},
			first: recAvoidEngaging,
		},
		{
			name:     "no identifier supplied",
			regCheck: &registry.RegistrationCheck{Valid: false, Reason: "No SEBI RegNo provided or found in bio"},
			first:    recVerifyRegistration,
		},
		{
			name:     "check skipped",
			regCheck: nil,
			first:    recVerifyRegistration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := BuildRecommendations(nil, tt.regCheck)
			require.NotEmpty(t, recs)
			assert.Equal(t, tt.first, recs[0])
		})
	}
}

func TestBuildRecommendations_ValidCheckFallsBackToDisclosures(t *testing.T) {
	recs := BuildRecommendations(nil, &registry.RegistrationCheck{Valid: true})
	assert.Equal(t, []string{recRequestDisclosures}, recs)
}

func TestBuildRecommendations_GuidanceDeduplicated(t *testing.T) {
	violations := []Violation{
		{Code: "A", Guidance: "do x"},
		{Code: "B", Guidance: "do y"},
		{Code: "C", Guidance: "do x"},
		{Code: "D", Guidance: ""},
	}
	recs := BuildRecommendations(violations, &registry.RegistrationCheck{Valid: true})
	assert.Equal(t, []string{"do x", "do y"}, recs)
}

func TestBuildRecommendations_CapAndUniqueness(t *testing.T) {
	var violations []Violation
	for i := 0; i < 12; i++ {
		violations = append(violations, Violation{
			Code:     fmt.Sprintf("R%d", i),
			Guidance: fmt.Sprintf("guidance %d", i),
		})
	}

	recs := BuildRecommendations(violations, nil)
	assert.Len(t, recs, maxRecommendations)

	seen := make(map[string]struct{})
	for _, r := range recs {
		_, dup := seen[r]
		assert.False(t, dup, "duplicate recommendation %q", r)
		seen[r] = struct{}{}
	}
	// The advisory takes the first slot
	assert.Equal(t, recVerifyRegistration, recs[0])
}

func TestBuildRecommendations_NeverEmpty(t *testing.T) {
	recs := BuildRecommendations(nil, &registry.RegistrationCheck{Valid: true})
	require.NotEmpty(t, recs)

	recs = BuildRecommendations(nil, nil)
	require.NotEmpty(t, recs)
}
