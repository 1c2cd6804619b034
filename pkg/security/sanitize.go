package security

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims whitespace and removes control characters, keeping
// newlines and tabs. Suitable for free-form text fields before analysis.
func SanitizeString(s string) string {
	return strings.TrimSpace(removeControlCharacters(s))
}

// removeControlCharacters strips non-printable runes except \n and \t
func removeControlCharacters(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// StripHTMLTags removes markup, leaving only the text content. Bios scraped
// from web profiles often arrive with residual tags.
func StripHTMLTags(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses runs of whitespace to single spaces
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateString cuts s to at most maxLength runes
func TruncateString(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

// SanitizeFilename makes an uploaded filename safe for logging and storage:
// path separators and traversal sequences are removed, remaining disallowed
// characters become underscores, and the result is capped at 255 bytes.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "")
	name = strings.ReplaceAll(name, "\\", "")
	for strings.Contains(name, "..") {
		name = strings.ReplaceAll(name, "..", "")
	}

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	if len(name) > 255 {
		name = name[:255]
	}
	return name
}
