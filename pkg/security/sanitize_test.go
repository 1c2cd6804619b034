package security

import (
	"strings"
	"testing"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"simple string", "hello world", "hello world"},
		{"whitespace trim", "  hello world  ", "hello world"},
		{"null bytes removed", "hello\x00world", "helloworld"},
		{"multiple null bytes", "\x00test\x00input\x00", "testinput"},
		{"preserves newlines", "hello\nworld", "hello\nworld"},
		{"preserves tabs", "hello\tworld", "hello\tworld"},
		{"removes control chars", "hello\x01\x02\x03world", "helloworld"},
		{"unicode preserved", "hello 世界", "hello 世界"},
		{"emoji preserved", "hello 👋", "hello 👋"},
		{"mixed content", "  hello\x00\x01world  ", "helloworld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeString(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no tags", "hello world", "hello world"},
		{"single tag", "<p>hello</p>", "hello"},
		{"nested tags", "<div><p>hello</p></div>", "hello"},
		{"self-closing tags", "<br/>hello<hr/>", "hello"},
		{"with attributes", "<a href='url'>link</a>", "link"},
		{"comment", "<!-- comment -->hello", "hello"},
		{"malformed tag", "<p>hello</div>", "hello"},
		{"uppercase tags", "<DIV>hello</DIV>", "hello"},
		{"mixed content", "Hello <b>World</b>!", "Hello World!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripHTMLTags(tt.input)
			if result != tt.expected {
				t.Errorf("StripHTMLTags(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single space", "hello world", "hello world"},
		{"multiple spaces", "hello    world", "hello world"},
		{"tabs", "hello\t\tworld", "hello world"},
		{"newlines", "hello\n\nworld", "hello world"},
		{"mixed whitespace", "hello  \t\n  world", "hello world"},
		{"only whitespace", "     ", ""},
		{"complex mixed", "  hello  \t world  \n foo  ", "hello world foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeWhitespace(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"empty string", "", 10, ""},
		{"shorter than max", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"longer than max", "hello world", 5, "hello"},
		{"zero max length", "hello", 0, ""},
		{"truncate to 1", "hello", 1, "h"},
		{"unicode counted by rune", "héllo wörld", 5, "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateString(tt.input, tt.maxLength)
			if result != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLength, result, tt.expected)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"simple filename", "file.txt", "file.txt"},
		{"with path separator", "/path/to/file.txt", "pathtofile.txt"},
		{"with backslash", "path\\to\\file.txt", "pathtofile.txt"},
		{"directory traversal", "../../../etc/passwd", "etcpasswd"},
		{"double dots", "file..txt", "filetxt"},
		{"with spaces", "my file.txt", "my_file.txt"},
		{"long filename", strings.Repeat("a", 300), strings.Repeat("a", 255)},
		{"mixed traversal", "..\\..\\file.txt", "file.txt"},
		{"hyphen allowed", "my-file.txt", "my-file.txt"},
		{"underscore allowed", "my_file.txt", "my_file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func BenchmarkSanitizeString(b *testing.B) {
	input := "  hello\x00world\x01test  "
	for i := 0; i < b.N; i++ {
		SanitizeString(input)
	}
}
