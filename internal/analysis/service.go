package analysis

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/trustrails/adviser-shield/internal/enrichment"
	"github.com/trustrails/adviser-shield/internal/registry"
	"github.com/trustrails/adviser-shield/pkg/common"
	"github.com/trustrails/adviser-shield/pkg/logger"
	"github.com/trustrails/adviser-shield/pkg/security"
)

// DefaultMaxChars bounds the text fed to the scanner when the caller does
// not set a cap of its own
const DefaultMaxChars = 8000

const summaryTopViolations = 5

// Contact signals that make an identity independently reachable
var contactInfoPattern = regexp.MustCompile(`(?i)\b(email|@|phone|tel:|\+91|contact\b|call\b|website\b|www\.|http)`)

// unverifiableIdentity is a synthetic violation added on the bio path when
// neither a valid registration nor any contact detail is present. It is not
// part of the rule catalog.
var unverifiableIdentity = Violation{
	Code:        "UNVERIFIABLE_IDENTITY",
	Description: "No verifiable registration and no contact information in the profile",
	Severity:    SeverityMedium,
	Guidance:    "Ask for verifiable contact details and the adviser's registration number.",
}

// Service runs the full analysis pipeline: scan, verify, score, recommend,
// summarize. Safe for concurrent use.
type Service struct {
	scanner    *Scanner
	verifier   RegistrationVerifier
	classifier enrichment.Classifier
}

var _ ServiceInterface = (*Service)(nil)

// NewService creates an analysis service. classifier may be nil; analysis
// then runs without the advisory ML signal.
func NewService(scanner *Scanner, verifier RegistrationVerifier, classifier enrichment.Classifier) *Service {
	return &Service{
		scanner:    scanner,
		verifier:   verifier,
		classifier: classifier,
	}
}

// Analyze runs the engine over one input. The scanner, verifier and
// classifier each see the same truncated text; scan and verification run
// concurrently since neither depends on the other's output.
//
// For identical inputs against an unchanged directory the violations,
// registration check, score, verdict and recommendations are identical;
// only the optional ML signal may vary.
func (s *Service) Analyze(ctx context.Context, input Input) (*Result, error) {
	text := security.SanitizeString(input.Text)
	if text == "" {
		return nil, common.NewBadRequestError("text is required", nil)
	}

	maxChars := input.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	text = security.TruncateString(text, maxChars)

	var (
		wg         sync.WaitGroup
		violations []Violation
		regCheck   *registry.RegistrationCheck
		regErr     error
		ml         *enrichment.Classification
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		violations = s.scanner.Scan(text)
	}()

	if !input.SkipVerification {
		wg.Add(1)
		go func() {
			defer wg.Done()
			regCheck, regErr = s.verifier.Verify(ctx, input.ClaimedID, text)
		}()
	}

	if s.classifier != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			classification, err := s.classifier.Classify(ctx, text)
			if err != nil {
				logger.WithContext(ctx).Warn("classifier unavailable", zap.Error(err))
				return
			}
			ml = classification
		}()
	}

	wg.Wait()

	if regErr != nil {
		return nil, fmt.Errorf("verify registration: %w", regErr)
	}

	if input.RequireContactInfo && (regCheck == nil || !regCheck.Valid) {
		if !contactInfoPattern.MatchString(text) {
			violations = append(violations, unverifiableIdentity)
		}
	}

	assessment := ComputeRisk(violations, regCheck)
	recommendations := BuildRecommendations(violations, regCheck)

	if violations == nil {
		violations = []Violation{}
	}

	return &Result{
		Violations:      violations,
		Registration:    regCheck,
		RiskScore:       assessment.RiskScore,
		Verdict:         assessment.Verdict,
		Recommendations: recommendations,
		Summary:         buildSummary(violations, regCheck, ml),
		ML:              ml,
		Disclaimer:      Disclaimer,
	}, nil
}

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// buildSummary renders a one-paragraph digest: the most severe violations
// first (stable within a tier), then the registration outcome, then the
// advisory classifier label if one was obtained.
func buildSummary(violations []Violation, regCheck *registry.RegistrationCheck, ml *enrichment.Classification) string {
	var parts []string

	if len(violations) == 0 {
		parts = append(parts, "No red flags detected in the text.")
	} else {
		ordered := make([]Violation, len(violations))
		copy(ordered, violations)
		sort.SliceStable(ordered, func(i, j int) bool {
			return severityRank(ordered[i].Severity) < severityRank(ordered[j].Severity)
		})

		top := ordered
		if len(top) > summaryTopViolations {
			top = top[:summaryTopViolations]
		}
		codes := make([]string, len(top))
		for i, v := range top {
			codes[i] = v.Code
		}
		parts = append(parts, fmt.Sprintf("Detected %d red flag(s); most severe: %s.",
			len(violations), strings.Join(codes, ", ")))
	}

	switch {
	case regCheck == nil:
		parts = append(parts, "Registration was not checked.")
	case regCheck.Valid:
		parts = append(parts, fmt.Sprintf("Registration check passed: %s.", regCheck.Reason))
	default:
		parts = append(parts, fmt.Sprintf("Registration check failed: %s.", regCheck.Reason))
	}

	if ml != nil {
		parts = append(parts, fmt.Sprintf("ML signal (advisory only): %s (%.2f).", ml.TopLabel, ml.TopScore))
	}

	return strings.Join(parts, " ")
}
