package documents

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxBytes limits how much of an uploaded document is read
const MaxBytes = 1 << 20

// Extractor turns an uploaded document into plain text for analysis.
// Implementations are best-effort; binary formats that cannot be decoded
// yield an empty string rather than an error.
type Extractor interface {
	Extract(ctx context.Context, r io.Reader, filename string) (string, error)
}

// PlainTextExtractor treats the upload as UTF-8 text. Invalid byte
// sequences are dropped and control characters stripped, which salvages
// readable text from files with mixed or damaged encodings.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a plain-text extractor
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Extract(ctx context.Context, r io.Reader, filename string) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxBytes))
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", filename, err)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		raw = raw[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String()), nil
}
