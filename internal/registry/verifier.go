package registry

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	regNoInTextPattern = regexp.MustCompile(`(?i)\bIN[A-Z]\d{6,10}\b`)

	// Known identifier shapes, strictest first
	shapePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^IN[AH]\d{8}$`),
		regexp.MustCompile(`(?i)^IN[AH]\d{7,9}$`),
		regexp.MustCompile(`(?i)^IN[A-Z]\d{6,10}$`),
	}

	numericSuffixPattern = regexp.MustCompile(`(\d{5,10})$`)
)

// NormalizeRegNo strips every non-alphanumeric rune and uppercases the rest,
// so that "ina-000 123456" and "INA000123456" compare equal.
func NormalizeRegNo(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RegistryVerifier resolves claimed registration numbers against a Directory.
type RegistryVerifier struct {
	directory Directory
}

// NewVerifier creates a verifier over the given directory
func NewVerifier(directory Directory) *RegistryVerifier {
	return &RegistryVerifier{directory: directory}
}

// Verify checks claimedID against the directory. When claimedID is empty it
// scans freeText for something shaped like a registration number and, if one
// is found, verifies that instead with ExtractedFromText set.
//
// Resolution order: exact normalized match, then shape validation, then a
// numeric-suffix fallback for identifiers that were typed with a damaged
// prefix. An inactive record never yields a valid check.
func (v *RegistryVerifier) Verify(ctx context.Context, claimedID, freeText string) (*RegistrationCheck, error) {
	extracted := false
	token := strings.TrimSpace(claimedID)
	if token == "" {
		if m := regNoInTextPattern.FindString(freeText); m != "" {
			token = m
			extracted = true
		}
	}
	if token == "" {
		return &RegistrationCheck{
			Valid:  false,
			Reason: "No SEBI RegNo provided or found in bio",
		}, nil
	}

	normalized := NormalizeRegNo(token)

	rec, err := v.directory.Find(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("directory lookup for %s: %w", normalized, err)
	}
	if rec != nil {
		if !rec.Active() {
			return &RegistrationCheck{
				Valid:             false,
				Reason:            fmt.Sprintf("RegNo found but status: %s", rec.Status),
				Details:           rec,
				ExtractedFromText: extracted,
			}, nil
		}
		reason := "SEBI verified (matched registry)"
		if extracted {
			reason = "Extracted RegNo from bio and matched registry"
		}
		return &RegistrationCheck{
			Valid:             true,
			Reason:            reason,
			Details:           rec,
			ExtractedFromText: extracted,
		}, nil
	}

	shapeOK := false
	for _, p := range shapePatterns {
		if p.MatchString(normalized) {
			shapeOK = true
			break
		}
	}

	suffix := ""
	if m := numericSuffixPattern.FindStringSubmatch(normalized); m != nil {
		suffix = m[1]
	}

	if !shapeOK {
		if suffix != "" {
			bysfx, err := v.directory.FindBySuffix(ctx, suffix)
			if err != nil {
				return nil, fmt.Errorf("directory suffix lookup for %s: %w", suffix, err)
			}
			if bysfx != nil {
				if !bysfx.Active() {
					return &RegistrationCheck{
						Valid:             false,
						Reason:            fmt.Sprintf("Format odd but registry suffix matched; status: %s", bysfx.Status),
						Details:           bysfx,
						ExtractedFromText: extracted,
					}, nil
				}
				return &RegistrationCheck{
					Valid:             true,
					Reason:            "Format non-standard but registry suffix matched",
					Details:           bysfx,
					ExtractedFromText: extracted,
				}, nil
			}
		}
		return &RegistrationCheck{
			Valid:             false,
			Reason:            fmt.Sprintf("Invalid SEBI RegNo format (attempted %s)", normalized),
			Attempted:         normalized,
			ExtractedFromText: extracted,
		}, nil
	}

	if suffix != "" {
		bysfx, err := v.directory.FindBySuffix(ctx, suffix)
		if err != nil {
			return nil, fmt.Errorf("directory suffix lookup for %s: %w", suffix, err)
		}
		if bysfx != nil {
			if !bysfx.Active() {
				return &RegistrationCheck{
					Valid:             false,
					Reason:            fmt.Sprintf("Registry matched by suffix; status: %s", bysfx.Status),
					Details:           bysfx,
					ExtractedFromText: extracted,
				}, nil
			}
			return &RegistrationCheck{
				Valid:             true,
				Reason:            "Registry matched by numeric suffix (format normalized)",
				Details:           bysfx,
				ExtractedFromText: extracted,
			}, nil
		}
	}

	return &RegistrationCheck{
		Valid:             false,
		Reason:            "RegNo format OK but not found in SEBI registry",
		Attempted:         normalized,
		ExtractedFromText: extracted,
	}, nil
}
