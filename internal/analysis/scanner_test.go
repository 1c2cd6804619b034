package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationCodes(violations []Violation) []string {
	var codes []string
	for _, v := range violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func TestScanner_Scan(t *testing.T) {
	s := NewScanner(DefaultCatalog())

	tests := []struct {
		name          string
		text          string
		expectedCodes []string
	}{
		{
			name:          "guaranteed returns",
			text:          "We offer guaranteed returns on every trade",
			expectedCodes: []string{"GUARANTEED_RETURNS"},
		},
		{
			name:          "insider tips",
			text:          "I have insider info on tomorrow's results",
			expectedCodes: []string{"INSIDER_TIPS"},
		},
		{
			name:          "telegram solicitation",
			text:          "Join our Telegram channel for daily calls",
			expectedCodes: []string{"TELEGRAM_GROUP_TIPS"},
		},
		{
			name:          "ipo allotment promise",
			text:          "Firm allotment in every upcoming IPO",
			expectedCodes: []string{"IPO_FIRM_ALLOTMENT"},
		},
		{
			name:          "credential phishing",
			text:          "Just share your otp and we handle the rest",
			expectedCodes: []string{"ACCOUNT_TAKEOVER_OR_TRADING_ON_BEHALF"},
		},
		{
			name:          "profit sharing",
			text:          "We work on a profit-sharing basis only",
			expectedCodes: []string{"PROFIT_SHARING_OR_BROKERAGE_REBATE"},
		},
		{
			name:          "faux approval",
			text:          "Our strategy is SEBI approved and certified",
			expectedCodes: []string{"FAUX_REGULATORY_APPROVAL"},
		},
		{
			name:          "multibagger claim",
			text:          "This multibagger will double your money",
			expectedCodes: []string{"MULTIBAGGER_TIMEBOUND"},
		},
		{
			name:          "clean text",
			text:          "We publish quarterly research reports with full risk disclosure.",
			expectedCodes: nil,
		},
		{
			name:          "empty text",
			text:          "",
			expectedCodes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := s.Scan(tt.text)
			assert.Equal(t, tt.expectedCodes, violationCodes(violations))
		})
	}
}

func TestScanner_OutputFollowsCatalogOrder(t *testing.T) {
	s := NewScanner(DefaultCatalog())

	// MULTIBAGGER phrasing appears before the guaranteed claim in the text;
	// output order must still follow the catalog.
	text := "100x multibagger! And returns are guaranteed."
	violations := s.Scan(text)

	require.Equal(t, []string{"GUARANTEED_RETURNS", "MULTIBAGGER_TIMEBOUND"}, violationCodes(violations))
}

func TestScanner_DeduplicatesMatchesCaseSensitively(t *testing.T) {
	s := NewScanner(DefaultCatalog())

	violations := s.Scan("guaranteed guaranteed Guaranteed")
	require.Len(t, violations, 1)
	assert.Equal(t, []string{"guaranteed", "Guaranteed"}, violations[0].Matches)
}

func TestScanner_CapsMatchesPerRule(t *testing.T) {
	s := NewScanner(DefaultCatalog())

	terms := []string{
		"guaranteed", "GUARANTEED", "Guaranteed",
		"assured", "ASSURED", "Assured",
		"risk-free", "RISK-FREE", "Risk-free",
		"no-loss", "NO-LOSS", "No-loss",
	}
	violations := s.Scan(strings.Join(terms, " "))

	require.Len(t, violations, 1)
	assert.Len(t, violations[0].Matches, maxMatchesPerRule)
	// First-seen order is preserved up to the cap
	assert.Equal(t, "guaranteed", violations[0].Matches[0])
}

func TestScanner_CarriesRuleMetadata(t *testing.T) {
	s := NewScanner(DefaultCatalog())

	violations := s.Scan("assured returns for all clients")
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, "GUARANTEED_RETURNS", v.Code)
	assert.Equal(t, SeverityHigh, v.Severity)
	assert.NotEmpty(t, v.Description)
	assert.NotEmpty(t, v.Guidance)
	assert.Equal(t, []string{"assured"}, v.Matches)
}

func TestScanner_DeterministicAcrossRuns(t *testing.T) {
	s := NewScanner(DefaultCatalog())
	text := "Guaranteed profits, join our Telegram, 10x multibagger soon"

	first := s.Scan(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Scan(text))
	}
}
