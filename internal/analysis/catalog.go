package analysis

import (
	"fmt"
	"regexp"
)

// RedFlagRule is one entry in the fraud pattern catalog. Rules are data: the
// scanner and scorer never special-case individual codes, so extending the
// catalog needs no engine changes.
type RedFlagRule struct {
	Code        string
	Description string
	Severity    Severity
	Pattern     *regexp.Regexp
	Guidance    string
}

// Catalog is an ordered, read-only rule set. Order is presentational only
// (summary tie-breaks); correctness never depends on it.
type Catalog struct {
	rules []RedFlagRule
}

// NewCatalog builds a catalog, rejecting duplicate rule codes
func NewCatalog(rules []RedFlagRule) (*Catalog, error) {
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if r.Code == "" {
			return nil, fmt.Errorf("rule with empty code")
		}
		if _, dup := seen[r.Code]; dup {
			return nil, fmt.Errorf("duplicate rule code %q", r.Code)
		}
		if r.Pattern == nil {
			return nil, fmt.Errorf("rule %s has no pattern", r.Code)
		}
		seen[r.Code] = struct{}{}
	}

	out := make([]RedFlagRule, len(rules))
	copy(out, rules)
	return &Catalog{rules: out}, nil
}

// Rules returns the catalog's rules in order
func (c *Catalog) Rules() []RedFlagRule {
	return c.rules
}

// Len returns the number of rules
func (c *Catalog) Len() int {
	return len(c.rules)
}

var defaultRules = []RedFlagRule{
	{
		Code:        "GUARANTEED_RETURNS",
		Description: "Promises of guaranteed/assured profits or risk-free returns",
		Severity:    SeverityHigh,
		Pattern:     regexp.MustCompile(`(?i)\b(guarantee(?:d)?|assured|sure[-\s]*shot|risk[-\s]*free|fixed[-\s]*return|capital[-\s]*protected|no[-\s]*loss|guaranteed\s+profits?)\b`),
		Guidance:    "SEBI requires risk disclosure and forbids guaranteed/assured returns. Avoid promises of guaranteed profit; disclose risks clearly.",
	},
	{
		Code:        "INSIDER_TIPS",
		Description: "Claims of insider/privileged information or sure-shot tips",
		Severity:    SeverityHigh,
		Pattern:     regexp.MustCompile(`(?i)\b(insider(?:\s+info|(?:\s+)?tips?)|inside(?:r)?\s+information|inside[-\s]*scoop|non[-\s]*public\s+information|privileged\s+info)\b`),
		Guidance:    "Trading on or promoting insider/non-public information is illegal. Do not offer or act on insider tips.",
	},
	{
		Code:        "TELEGRAM_GROUP_TIPS",
		Description: "Directing users to Telegram/WhatsApp groups for tips",
		Severity:    SeverityMedium,
		Pattern:     regexp.MustCompile(`(?i)\b(join|dm|message|get in touch)\b.*\b(telegram|whatsapp|tg)\b|\bt\.me/|\btelegram\.me\b`),
		Guidance:    "Advice in unmonitored groups (Telegram/WhatsApp) is hard to verify. Use regulated, auditable channels and maintain records.",
	},
	{
		Code:        "IPO_FIRM_ALLOTMENT",
		Description: "Promises of firm/guaranteed IPO allotment",
		Severity:    SeverityHigh,
		Pattern:     regexp.MustCompile(`(?i)\b(firm\s+allotment|guarantee(?:d)?\s+allotment|guaranteed\s+ipo|guaranteed\s+allotment|firm\s+ipo\s+allotment)\b`),
		Guidance:    "Guaranteed IPO allotment promises are not permissible. Allotment depends on market mechanisms and cannot be guaranteed by advisers.",
	},
	{
		Code:        "ACCOUNT_TAKEOVER_OR_TRADING_ON_BEHALF",
		Description: "Offers to manage your account, request for OTP/login, or trading on your behalf",
		Severity:    SeverityHigh,
		Pattern:     regexp.MustCompile(`(?i)\b(manage (?:your|client'?s) account|give (?:me|us) (?:otp|password|login)|send (?:your )?(?:otp|password)|we(?:'| )?ll trade on your behalf|power of attorney|share your otp)\b`),
		Guidance:    "Never ask for OTPs, passwords, or login credentials. Advisers should not request direct access to client accounts without formal, auditable authorization.",
	},
	{
		Code:        "PROFIT_SHARING_OR_BROKERAGE_REBATE",
		Description: "Profit sharing, revenue share, or brokerage rebate claims",
		Severity:    SeverityMedium,
		Pattern:     regexp.MustCompile(`(?i)\b(profit[-\s]*sharing|revenue\s*share|brokerage\s*(?:rebate|refund))\b`),
		Guidance:    "Fee disclosures and conflicts of interest must be transparent. Be cautious of offers that hide or complicate fee structures.",
	},
	{
		Code:        "FAUX_REGULATORY_APPROVAL",
		Description: "Vague/faux claims of SEBI/NSE/BSE approvals or letters",
		Severity:    SeverityLow,
		Pattern:     regexp.MustCompile(`(?i)\b(sebi|nse|bse)\b.*\b(approved|authori[sz]ed|certified|letter|clearance|license|verified)\b`),
		Guidance:    "Do not make vague claims of regulatory approval. If you claim a registration/approval, provide verifiable RegNo and evidence.",
	},
	{
		Code:        "MULTIBAGGER_TIMEBOUND",
		Description: "Aggressive multibagger claims on a short timeline",
		Severity:    SeverityMedium,
		Pattern:     regexp.MustCompile(`(?i)\b(multibagger|100x|10x|huge\s+returns|massive\s+returns|double\s+your\s+money|triple\s+your\s+money|% gain in (?:\d{1,2} (?:days|weeks|months)))\b`),
		Guidance:    "Avoid sensational performance promises. All investments carry risk; historical performance does not guarantee future returns.",
	},
}

// DefaultCatalog returns the built-in SEBI-aligned rule set
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultRules)
	if err != nil {
		// defaultRules is a compile-time table; a failure here is a programming error
		panic(err)
	}
	return c
}
