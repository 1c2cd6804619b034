package analysis

import "strings"

// maxMatchesPerRule caps the evidence stored per violation
const maxMatchesPerRule = 10

// Scanner applies a rule catalog to free-form text. It holds no mutable
// state, so a single instance is safe for concurrent use.
type Scanner struct {
	catalog *Catalog
}

// NewScanner creates a scanner over the given catalog
func NewScanner(catalog *Catalog) *Scanner {
	return &Scanner{catalog: catalog}
}

// Scan returns one Violation per rule that matched the text at least once.
// Output order follows catalog order. Matches are trimmed, deduplicated
// case-sensitively in first-seen order, and capped at 10 per rule.
//
// Cost is linear in the input for each rule; callers are expected to
// truncate very large inputs before scanning. regexp.FindAllString advances
// past zero-width matches on its own, so patterns that can match empty
// strings cannot loop.
func (s *Scanner) Scan(text string) []Violation {
	var violations []Violation

	for _, rule := range s.catalog.Rules() {
		raw := rule.Pattern.FindAllString(text, -1)
		if len(raw) == 0 {
			continue
		}

		seen := make(map[string]struct{}, len(raw))
		matches := make([]string, 0, len(raw))
		for _, m := range raw {
			m = strings.TrimSpace(m)
			if m == "" {
				continue
			}
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			matches = append(matches, m)
			if len(matches) == maxMatchesPerRule {
				break
			}
		}

		if len(matches) == 0 {
			continue
		}

		violations = append(violations, Violation{
			Code:        rule.Code,
			Description: rule.Description,
			Severity:    rule.Severity,
			Matches:     matches,
			Guidance:    rule.Guidance,
		})
	}

	return violations
}
